package tabular

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/lipgloss/v2"
)

// Segment is one piece of rendered output: a text span with an optional
// style, or a line break.
type Segment struct {
	Text  string
	Style *lipgloss.Style
	Break bool
}

// Binding couples a key binding with the handler invoked when it fires. The
// handler navigates by delta unless an explicit page argument is given, which
// overrides delta navigation and jumps (clamped) to that page.
type Binding struct {
	Key     key.Binding
	Trigger func(page ...int)
}

// Block is the rendered table: an ordered sequence of segments plus, when
// paginated, forward/backward navigation bindings. The host draws the
// segments and routes matching key events to the bindings; the block itself
// never talks to the host.
type Block struct {
	Segments []Segment

	Forward  *Binding
	Backward *Binding
}

// Empty reports whether the block renders nothing.
func (b Block) Empty() bool { return len(b.Segments) == 0 }

// Bindings returns the attached navigation bindings, if any.
func (b Block) Bindings() []Binding {
	var out []Binding
	if b.Backward != nil {
		out = append(out, *b.Backward)
	}
	if b.Forward != nil {
		out = append(out, *b.Forward)
	}
	return out
}

// String renders the block with styles applied, lines separated by newlines.
func (b Block) String() string {
	var sb strings.Builder
	for _, s := range b.Segments {
		if s.Break {
			sb.WriteByte('\n')
			continue
		}
		if s.Style != nil {
			sb.WriteString(s.Style.Render(s.Text))
		} else {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

// Plain renders the block without styles. Width properties are asserted on
// this form.
func (b Block) Plain() string {
	var sb strings.Builder
	for _, s := range b.Segments {
		if s.Break {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Lines splits the plain rendering into lines.
func (b Block) Lines() []string {
	if b.Empty() {
		return nil
	}
	return strings.Split(b.Plain(), "\n")
}
