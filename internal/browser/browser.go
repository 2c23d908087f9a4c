// Package browser is the reference host for the tabular engine: a bubbletea
// model that owns a row set and the uncontrolled page state, re-renders the
// block on every change, and routes key events into the block's navigation
// bindings. Resource browser screens embed or copy this model and swap in
// their own rows.
package browser

import (
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/tuigrid/tabular/pkg/pager"
	"github.com/tuigrid/tabular/pkg/tabular"
)

// Model hosts one table. Options acts as a template: Rows, State, and
// OnPageChanged are owned by the model and overwritten on every render.
type Model struct {
	rows  []tabular.Row
	opts  tabular.Options
	state pager.State
	block tabular.Block
	log   logr.Logger
	width int
}

func New(rows []tabular.Row, opts tabular.Options, log logr.Logger) *Model {
	m := &Model{rows: rows, opts: opts, log: log}
	m.render()
	return m
}

// SetRows replaces the data set, e.g. after a refresh from the wrapped CLI
// tool. The page state survives and re-clamps on render.
func (m *Model) SetRows(rows []tabular.Row) {
	m.rows = rows
	m.render()
}

// Block exposes the most recent render.
func (m *Model) Block() tabular.Block { return m.block }

func (m *Model) render() {
	o := m.opts
	o.Rows = m.rows
	o.State = &m.state
	o.OnPageChanged = func(page int) {
		m.log.V(1).Info("page changed", "page", page)
	}
	if m.width > 0 && o.MaxWidth == 0 {
		o.MaxWidth = m.width
	}
	m.block = tabular.Render(o)
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.KeyMsg:
		for _, b := range m.block.Bindings() {
			if key.Matches(v, b.Key) {
				b.Trigger()
				m.render()
				return m, nil
			}
		}
		switch v.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "home":
			if b := m.block.Backward; b != nil {
				b.Trigger(1)
				m.render()
			}
		case "end":
			if b := m.block.Forward; b != nil {
				// Clamped to the last page.
				b.Trigger(1 << 30)
				m.render()
			}
		}
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.render()
	}
	return m, nil
}

func (m *Model) View() string { return m.block.String() }
