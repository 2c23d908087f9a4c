// Package border is a fixed catalog of table border glyph sets. Styles are a
// closed enum so a missing glyph is a compile-time impossibility rather than
// a runtime lookup miss.
package border

import "fmt"

// Style selects one of the fixed border glyph sets.
type Style int

const (
	None Style = iota
	Single
	Double
	Rounded
	ASCII
)

// Glyphs is the complete drawing set for one style. Header glyphs draw the
// separator line under the header row.
type Glyphs struct {
	TopLeft, TopFill, TopJunction, TopRight             string
	Left, Middle, Right                                 string
	BottomLeft, BottomFill, BottomJunction, BottomRight string
	HeaderLeft, HeaderFill, HeaderJunction, HeaderRight string
}

var glyphs = [...]Glyphs{
	None: {},
	Single: {
		TopLeft: "┌", TopFill: "─", TopJunction: "┬", TopRight: "┐",
		Left: "│", Middle: "│", Right: "│",
		BottomLeft: "└", BottomFill: "─", BottomJunction: "┴", BottomRight: "┘",
		HeaderLeft: "├", HeaderFill: "─", HeaderJunction: "┼", HeaderRight: "┤",
	},
	Double: {
		TopLeft: "╔", TopFill: "═", TopJunction: "╦", TopRight: "╗",
		Left: "║", Middle: "║", Right: "║",
		BottomLeft: "╚", BottomFill: "═", BottomJunction: "╩", BottomRight: "╝",
		HeaderLeft: "╠", HeaderFill: "═", HeaderJunction: "╬", HeaderRight: "╣",
	},
	Rounded: {
		TopLeft: "╭", TopFill: "─", TopJunction: "┬", TopRight: "╮",
		Left: "│", Middle: "│", Right: "│",
		BottomLeft: "╰", BottomFill: "─", BottomJunction: "┴", BottomRight: "╯",
		HeaderLeft: "├", HeaderFill: "─", HeaderJunction: "┼", HeaderRight: "┤",
	},
	ASCII: {
		TopLeft: "+", TopFill: "-", TopJunction: "+", TopRight: "+",
		Left: "|", Middle: "|", Right: "|",
		BottomLeft: "+", BottomFill: "-", BottomJunction: "+", BottomRight: "+",
		HeaderLeft: "+", HeaderFill: "-", HeaderJunction: "+", HeaderRight: "+",
	},
}

// Glyphs returns the drawing set for the style. None yields empty glyphs;
// callers check Enabled before drawing.
func (s Style) Glyphs() Glyphs {
	if s < None || int(s) >= len(glyphs) {
		return glyphs[None]
	}
	return glyphs[s]
}

// Enabled reports whether the style draws anything at all.
func (s Style) Enabled() bool { return s > None && int(s) < len(glyphs) }

func (s Style) String() string {
	switch s {
	case None:
		return "none"
	case Single:
		return "single"
	case Double:
		return "double"
	case Rounded:
		return "rounded"
	case ASCII:
		return "ascii"
	}
	return fmt.Sprintf("border.Style(%d)", int(s))
}

// Parse maps a configuration string to a style. The empty string and "none"
// disable the border.
func Parse(name string) (Style, error) {
	switch name {
	case "", "none":
		return None, nil
	case "single":
		return Single, nil
	case "double":
		return Double, nil
	case "rounded":
		return Rounded, nil
	case "ascii":
		return ASCII, nil
	}
	return None, fmt.Errorf("unknown border style %q", name)
}

// FromBool maps the boolean border shorthand: true aliases Single.
func FromBool(on bool) Style {
	if on {
		return Single
	}
	return None
}
