package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/tuigrid/tabular/internal/browser"
	"github.com/tuigrid/tabular/pkg/border"
	"github.com/tuigrid/tabular/pkg/tabular"
)

var (
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#93C5FD"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// makeRows builds a demo resource listing: header row first, then data rows
// with per-cell styles and a value-dependent status style.
func makeRows(n int) []tabular.Row {
	rows := make([]tabular.Row, 0, n+1)
	header := tabular.Row{
		Cells: []tabular.Cell{
			tabular.TextCell("NAME"),
			tabular.TextCell("STATUS"),
			tabular.TextCell("AGE"),
			tabular.TextCell("MESSAGE"),
		},
		Style: &headerStyle,
	}
	rows = append(rows, header)

	for i := 0; i < n; i++ {
		status, st := "OK", okStyle
		switch {
		case i%15 == 0:
			status, st = "ERROR", errorStyle
		case i%5 == 0:
			status, st = "WARN", warnStyle
		}
		rows = append(rows, tabular.Row{Cells: []tabular.Cell{
			tabular.StyledCell(fmt.Sprintf("res-%04d", i+1), idStyle),
			tabular.StyledCell(status, st),
			tabular.TextCell(fmt.Sprintf("%dm", (i*7)%480)),
			tabular.TextCell(fmt.Sprintf("sample message for row %04d", i+1)),
		}})
	}
	return rows
}

func newLogger() logr.Logger {
	if os.Getenv("DEBUG") == "" {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, prefix, args)
	}, funcr.Options{Verbosity: 4})
}

func main() {
	style := border.Rounded
	if len(os.Args) > 1 {
		var err error
		if style, err = border.Parse(os.Args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	m := browser.New(makeRows(120), tabular.Options{
		Border:   style,
		Header:   true,
		PageSize: 20,
	}, newLogger())

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
