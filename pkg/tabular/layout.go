package tabular

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/tuigrid/tabular/pkg/cell"
)

// padding columns added to every column beyond its widest cell.
const pad = 1

// columnWidths computes one width per column over the currently visible
// rows: the widest measured cell plus padding. Rows shorter than the widest
// arity contribute nothing for the columns they lack.
func columnWidths(rows []Row) []int {
	cols := 0
	for _, r := range rows {
		if len(r.Cells) > cols {
			cols = len(r.Cells)
		}
	}
	widths := make([]int, cols)
	for _, r := range rows {
		for i, c := range r.Cells {
			if w := cell.Width(c.Content) + pad; w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// tableWidth is the total rendered width: borders add one column separator
// between columns plus the two outer edges.
func tableWidth(widths []int, bordered bool) int {
	w := 0
	for _, cw := range widths {
		w += cw
	}
	if bordered && len(widths) > 0 {
		w += len(widths) + 1
	}
	return w
}

// fitWidths shrinks desired column widths proportionally so they sum to at
// most total, keeping every column at least minCol wide. Widths that already
// fit are returned unchanged.
func fitWidths(desired []int, total, minCol int) []int {
	n := len(desired)
	if n == 0 {
		return nil
	}
	if minCol < 1 {
		minCol = 1
	}
	sumDesired := 0
	for _, d := range desired {
		if d < minCol {
			d = minCol
		}
		sumDesired += d
	}
	out := make([]int, n)
	if sumDesired <= total {
		for i, d := range desired {
			out[i] = max(d, minCol)
		}
		return out
	}
	base := 0
	for i, d := range desired {
		if d < minCol {
			d = minCol
		}
		q := d * total / sumDesired
		if q < minCol {
			q = minCol
		}
		out[i] = q
		base += q
	}
	for rem := total - base; rem > 0; {
		for i := range out {
			if rem == 0 {
				break
			}
			out[i]++
			rem--
		}
	}
	// Bumping narrow columns up to minCol can overshoot the budget; take the
	// excess back from the widest columns.
	for base > total {
		widest := -1
		for i := range out {
			if out[i] > minCol && (widest < 0 || out[i] > out[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		out[widest]--
		base--
	}
	return out
}

// truncatePad truncates s with an ellipsis tail and right-pads the result to
// exactly w display columns.
func truncatePad(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > w {
		if w == 1 {
			return "…"
		}
		s = truncate.StringWithTail(s, uint(w), "…")
	}
	if n := w - ansi.StringWidth(s); n > 0 {
		s += strings.Repeat(" ", n)
	}
	return s
}

// statusLine formats the pagination bar: current page, total pages, item
// count, and the 1-indexed inclusive range of visible rows.
func statusLine(page, total, items, start, end int) string {
	return fmt.Sprintf("◀ [[ Page %d of %d ]] ▶    %d items    (%d-%d of %d)",
		page, total, items, start, end, items)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
