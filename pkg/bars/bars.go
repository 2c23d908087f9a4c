// Package bars renders the two auxiliary unicode bar widgets used alongside
// tables: a horizontal progress meter and a historical sparkline. Both map
// linear values onto fixed glyph ramps and produce fixed-width strings.
package bars

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// eighth blocks, 1/8 through 8/8 of a cell.
var meterRamp = []rune("▏▎▍▌▋▊▉█")

// bar heights, lowest to highest.
var sparkRamp = []rune("▁▂▃▄▅▆▇█")

// Meter renders value out of total as a progress bar exactly width cells
// wide: full blocks, one partial eighth block, space padding. Degenerate
// inputs clamp rather than error.
func Meter(value, total float64, width int) string {
	if width <= 0 {
		return ""
	}
	ratio := 0.0
	if total > 0 && !math.IsNaN(value) {
		ratio = value / total
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	eighths := int(math.Round(ratio * float64(width) * 8))
	full := eighths / 8
	rem := eighths % 8

	var b strings.Builder
	b.Grow(width * 3)
	for i := 0; i < full; i++ {
		b.WriteRune(meterRamp[7])
	}
	if rem > 0 {
		b.WriteRune(meterRamp[rem-1])
		full++
	}
	for i := full; i < width; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}

// Sparkline renders the last width samples as a bar-per-sample history,
// scaled against the highest sample in the window. Fewer samples than width
// left-pads with spaces so the newest sample always sits at the right edge.
func Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	peak := 0.0
	for _, v := range values {
		if !math.IsNaN(v) && v > peak {
			peak = v
		}
	}

	var b strings.Builder
	b.Grow(width * 3)
	for i := len(values); i < width; i++ {
		b.WriteByte(' ')
	}
	for _, v := range values {
		if math.IsNaN(v) || v < 0 {
			v = 0
		}
		idx := 0
		if peak > 0 {
			idx = int(math.Ceil(v / peak * float64(len(sparkRamp)-1)))
		}
		b.WriteRune(sparkRamp[idx])
	}
	return b.String()
}

// StyledMeter is Meter with a lipgloss style applied to the filled portion
// only, keeping the padding unstyled so backgrounds do not bleed.
func StyledMeter(value, total float64, width int, st lipgloss.Style) string {
	s := Meter(value, total, width)
	trimmed := strings.TrimRight(s, " ")
	if trimmed == "" {
		return s
	}
	return st.Render(trimmed) + s[len(trimmed):]
}
