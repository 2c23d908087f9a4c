// Package cell models table cell content as a small markup tree and measures
// its on-screen width. The rest of the pipeline treats a cell as opaque: it
// only ever needs the flattened plain text, the display width, and a walk
// over styled spans for emission.
package cell

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Node is renderable cell content: a plain Text leaf, a Styled span, or a
// Seq of spans. The set is closed so every consumer can handle all variants.
type Node interface {
	flatten(b *strings.Builder)
}

// Text is a plain text leaf. Embedded escape sequences are stripped when the
// cell is flattened, so upstream data that arrives pre-colored still
// measures correctly.
type Text string

// Styled applies a lipgloss style to a subtree. Nested styles inherit unset
// properties from the enclosing span.
type Styled struct {
	Style lipgloss.Style
	Child Node
}

// Seq concatenates spans. A cell built from several differently styled
// fragments renders as one unit with one combined width.
type Seq []Node

func (t Text) flatten(b *strings.Builder) { b.WriteString(ansi.Strip(string(t))) }

func (s Styled) flatten(b *strings.Builder) {
	if s.Child != nil {
		s.Child.flatten(b)
	}
}

func (s Seq) flatten(b *strings.Builder) {
	for _, n := range s {
		if n != nil {
			n.flatten(b)
		}
	}
}

// Flatten reduces a tree to its plain printable text, dropping all markup.
// A nil node flattens to the empty string.
func Flatten(n Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.flatten(&b)
	return b.String()
}

// Width reports the number of terminal columns the flattened content
// occupies. Wide runes count 2, zero-width combining marks count 0; this is
// not the rune or byte count. Width never panics: on any internal failure it
// degrades to the rune count of the node's raw string form.
func Width(n Node) (w int) {
	defer func() {
		if recover() != nil {
			w = utf8.RuneCountInString(fmt.Sprint(n))
		}
	}()
	return ansi.StringWidth(Flatten(n))
}

// Walk visits every text leaf in order with the style in effect at that
// leaf, or nil for unstyled text. Emission uses this to produce one styled
// span per leaf without interpreting the tree anywhere else.
func Walk(n Node, fn func(text string, style *lipgloss.Style)) {
	walk(n, nil, fn)
}

func walk(n Node, st *lipgloss.Style, fn func(string, *lipgloss.Style)) {
	switch v := n.(type) {
	case nil:
	case Text:
		fn(ansi.Strip(string(v)), st)
	case Styled:
		eff := v.Style
		if st != nil {
			eff = eff.Inherit(*st)
		}
		walk(v.Child, &eff, fn)
	case Seq:
		for _, c := range v {
			walk(c, st, fn)
		}
	}
}
