package browser

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tuigrid/tabular/internal/testlog"
	"github.com/tuigrid/tabular/pkg/border"
	"github.com/tuigrid/tabular/pkg/tabular"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func demoRows() []tabular.Row {
	return []tabular.Row{
		tabular.TextRow("r1"), tabular.TextRow("r2"),
		tabular.TextRow("r3"), tabular.TextRow("r4"),
		tabular.TextRow("r5"),
	}
}

func TestForwardKeyAdvancesPage(t *testing.T) {
	m := New(demoRows(), tabular.Options{PageSize: 2}, testlog.New(t))
	if out := m.Block().Plain(); !strings.Contains(out, "r1") {
		t.Fatalf("expected first page visible:\n%s", out)
	}

	m.Update(press(tea.KeyRight))
	out := m.Block().Plain()
	if !strings.Contains(out, "r3") || strings.Contains(out, "r1") {
		t.Fatalf("expected second page after right key:\n%s", out)
	}
}

func TestBackwardKeyClampsAtFirstPage(t *testing.T) {
	m := New(demoRows(), tabular.Options{PageSize: 2}, testlog.New(t))
	before := m.Block().Plain()
	m.Update(press(tea.KeyLeft))
	if after := m.Block().Plain(); after != before {
		t.Fatalf("backward on page 1 must be a no-op:\n%s\nvs\n%s", before, after)
	}
}

func TestEndJumpsToLastPage(t *testing.T) {
	m := New(demoRows(), tabular.Options{PageSize: 2}, testlog.New(t))
	m.Update(press(tea.KeyEnd))
	if out := m.Block().Plain(); !strings.Contains(out, "Page 3 of 3") {
		t.Fatalf("expected last page:\n%s", out)
	}
	m.Update(press(tea.KeyHome))
	if out := m.Block().Plain(); !strings.Contains(out, "Page 1 of 3") {
		t.Fatalf("expected first page after home:\n%s", out)
	}
}

func TestSetRowsReclampsPage(t *testing.T) {
	m := New(demoRows(), tabular.Options{PageSize: 2}, testlog.New(t))
	m.Update(press(tea.KeyEnd))
	m.SetRows(demoRows()[:2])
	if out := m.Block().Plain(); !strings.Contains(out, "r1") {
		t.Fatalf("expected page re-clamped after rows shrank:\n%s", out)
	}
}

func TestResizeFitsTable(t *testing.T) {
	rows := []tabular.Row{
		tabular.TextRow("id", "a very long message that will not fit a narrow window"),
		tabular.TextRow("x", "y"),
	}
	m := New(rows, tabular.Options{Border: border.Single}, testlog.New(t))
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	for _, ln := range m.Block().Lines() {
		if lipgloss.Width(ln) > 20 {
			t.Fatalf("line exceeds window width: %q", ln)
		}
	}
}
