// Package tabular renders structured row/column data as fixed-width text:
// bordered or plain tables with optional header separators, paginated either
// under caller control or self-managed. It is the shared layout engine for
// resource browser screens; the host only draws the returned block and
// routes key events to its navigation bindings.
package tabular

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/tuigrid/tabular/pkg/border"
	"github.com/tuigrid/tabular/pkg/cell"
	"github.com/tuigrid/tabular/pkg/pager"
)

// Cell is one unit of row content: a markup tree plus an optional display
// style applied to the whole cell.
type Cell struct {
	Content cell.Node
	Style   *lipgloss.Style
}

// Row is an ordered sequence of cells. A row-level style applies to every
// cell that has no style of its own.
type Row struct {
	Cells []Cell
	Style *lipgloss.Style
}

// TextCell wraps plain text as a cell.
func TextCell(s string) Cell { return Cell{Content: cell.Text(s)} }

// StyledCell wraps plain text with a cell-level style.
func StyledCell(s string, st lipgloss.Style) Cell {
	return Cell{Content: cell.Text(s), Style: &st}
}

// TextRow builds a row of plain text cells.
func TextRow(cells ...string) Row {
	r := Row{Cells: make([]Cell, len(cells))}
	for i, s := range cells {
		r.Cells[i] = TextCell(s)
	}
	return r
}

// Options is the full per-render input. Rows is required (possibly empty);
// everything else defaults to off. When Header is set the first row is the
// header. Page present means controlled pagination; PageSize alone with a
// State handle means uncontrolled. MaxWidth, when positive, pre-truncates
// cells so the table fits that many columns.
type Options struct {
	Rows            []Row
	Border          border.Style
	Header          bool
	HeaderSeparator bool

	Page          int
	PageSize      int
	State         *pager.State
	OnPageChanged func(page int)

	MaxWidth int
}

// Render assembles the table for the current inputs. It is deterministic and
// side-effect free: identical inputs produce identical blocks, and the only
// state it ever touches is the uncontrolled page in Options.State, mutated
// exclusively through the returned navigation bindings.
func Render(o Options) Block {
	if len(o.Rows) == 0 {
		return Block{}
	}

	rows := o.Rows
	var header *Row
	if o.Header {
		header = &rows[0]
		rows = rows[1:]
	}

	pg := pager.Resolve(pager.Config{
		Page:     o.Page,
		PageSize: o.PageSize,
		State:    o.State,
		OnChange: o.OnPageChanged,
	}, len(rows))

	start, end := pg.Window()
	var visible []Row
	if start <= end {
		visible = rows[start-1 : end]
	}

	all := visible
	if header != nil {
		all = append([]Row{*header}, visible...)
	}
	if len(all) == 0 {
		return Block{}
	}

	widths := columnWidths(all)
	bordered := o.Border.Enabled()
	g := o.Border.Glyphs()

	fit := false
	if o.MaxWidth > 0 && tableWidth(widths, bordered) > o.MaxWidth {
		frame := 0
		if bordered {
			frame = len(widths) + 1
		}
		widths = fitWidths(widths, o.MaxWidth-frame, 1+pad)
		fit = true
	}

	paginated := pg.Enabled()
	var bar string
	if paginated {
		bar = statusLine(pg.Page(), pg.TotalPages(), len(rows), start, end)
		// A bar wider than the table widens the rightmost column so every
		// line still renders at the same width.
		if extra := ansi.StringWidth(bar) - tableWidth(widths, bordered); extra > 0 && len(widths) > 0 {
			widths[len(widths)-1] += extra
		}
	}
	tw := tableWidth(widths, bordered)

	var lines [][]Segment
	if paginated {
		lines = append(lines, barLine(bar, tw), ruleLine(tw))
	}
	if bordered {
		lines = append(lines, edgeLine(widths, g.TopLeft, g.TopFill, g.TopJunction, g.TopRight))
	}
	for i, r := range all {
		lines = append(lines, rowLine(r, widths, g, bordered, fit))
		if i == 0 && header != nil && (bordered || o.HeaderSeparator) {
			if bordered {
				lines = append(lines, edgeLine(widths, g.HeaderLeft, g.HeaderFill, g.HeaderJunction, g.HeaderRight))
			} else {
				lines = append(lines, ruleLine(tw))
			}
		}
	}
	if bordered {
		lines = append(lines, edgeLine(widths, g.BottomLeft, g.BottomFill, g.BottomJunction, g.BottomRight))
	}
	if paginated {
		lines = append(lines, ruleLine(tw), barLine(bar, tw))
	}

	b := Block{Segments: joinLines(lines)}
	if paginated {
		b.Forward = &Binding{
			Key:     key.NewBinding(key.WithKeys("right", "pgdown"), key.WithHelp("→", "next page")),
			Trigger: navigate(pg, 1),
		}
		b.Backward = &Binding{
			Key:     key.NewBinding(key.WithKeys("left", "pgup"), key.WithHelp("←", "previous page")),
			Trigger: navigate(pg, -1),
		}
	}
	return b
}

// navigate builds a trigger that moves by delta, unless an explicit page
// argument overrides it with an absolute jump.
func navigate(pg *pager.Pager, delta int) func(page ...int) {
	return func(page ...int) {
		if len(page) > 0 {
			pg.Go(page[0])
			return
		}
		pg.Move(delta)
	}
}

// barLine centers the pagination bar over the table width, padded on both
// sides so the line measures exactly the table width.
func barLine(bar string, tw int) []Segment {
	bw := ansi.StringWidth(bar)
	if bw >= tw {
		return []Segment{{Text: bar}}
	}
	left := (tw - bw) / 2
	segs := make([]Segment, 0, 3)
	if left > 0 {
		segs = append(segs, Segment{Text: strings.Repeat(" ", left)})
	}
	segs = append(segs, Segment{Text: bar})
	if right := tw - bw - left; right > 0 {
		segs = append(segs, Segment{Text: strings.Repeat(" ", right)})
	}
	return segs
}

// ruleLine draws a plain horizontal rule across the table width.
func ruleLine(tw int) []Segment {
	return []Segment{{Text: strings.Repeat("─", tw)}}
}

// edgeLine draws a border line: left corner, per-column fill, junctions
// between columns, right corner.
func edgeLine(widths []int, left, fill, junction, right string) []Segment {
	segs := make([]Segment, 0, 2*len(widths)+1)
	segs = append(segs, Segment{Text: left})
	for i, w := range widths {
		segs = append(segs, Segment{Text: strings.Repeat(fill, w)})
		if i < len(widths)-1 {
			segs = append(segs, Segment{Text: junction})
		} else {
			segs = append(segs, Segment{Text: right})
		}
	}
	return segs
}

// rowLine emits one data or header row: every cell as styled spans padded to
// its column width, with border glyphs between cells when bordered. Missing
// trailing cells render as blank columns.
func rowLine(r Row, widths []int, g border.Glyphs, bordered, fit bool) []Segment {
	var segs []Segment
	if bordered {
		segs = append(segs, Segment{Text: g.Left})
	}
	for i, w := range widths {
		var c Cell
		if i < len(r.Cells) {
			c = r.Cells[i]
		}
		segs = append(segs, cellSegments(c, r.Style, w, fit)...)
		if bordered {
			if i < len(widths)-1 {
				segs = append(segs, Segment{Text: g.Middle})
			} else {
				segs = append(segs, Segment{Text: g.Right})
			}
		}
	}
	return segs
}

// cellSegments renders one cell into spans padded to exactly w columns. In
// fit mode overlong content collapses to a single truncated span carrying
// the cell's base style; inner markup does not survive truncation.
func cellSegments(c Cell, rowStyle *lipgloss.Style, w int, fit bool) []Segment {
	base := c.Style
	if base == nil {
		base = rowStyle
	}

	cw := cell.Width(c.Content)
	if fit && cw > w-pad {
		out := []Segment{{Text: truncatePad(cell.Flatten(c.Content), w-pad), Style: base}}
		return append(out, Segment{Text: strings.Repeat(" ", pad), Style: base})
	}

	node := c.Content
	if base != nil && node != nil {
		node = cell.Styled{Style: *base, Child: node}
	}
	var segs []Segment
	cell.Walk(node, func(text string, st *lipgloss.Style) {
		segs = append(segs, Segment{Text: text, Style: st})
	})
	if n := w - cw; n > 0 {
		segs = append(segs, Segment{Text: strings.Repeat(" ", n), Style: base})
	}
	return segs
}

func joinLines(lines [][]Segment) []Segment {
	var segs []Segment
	for i, ln := range lines {
		if i > 0 {
			segs = append(segs, Segment{Break: true})
		}
		segs = append(segs, ln...)
	}
	return segs
}
