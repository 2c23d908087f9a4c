package border

import (
	"reflect"
	"testing"
)

func TestParseNames(t *testing.T) {
	cases := map[string]Style{
		"":        None,
		"none":    None,
		"single":  Single,
		"double":  Double,
		"rounded": Rounded,
		"ascii":   ASCII,
	}
	for name, want := range cases {
		got, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("Parse(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("dotted"); err == nil {
		t.Fatalf("expected error for unknown style")
	}
}

func TestFromBool(t *testing.T) {
	if FromBool(true) != Single {
		t.Fatalf("expected true to alias single")
	}
	if FromBool(false) != None {
		t.Fatalf("expected false to disable the border")
	}
}

func TestGlyphSetsComplete(t *testing.T) {
	for _, s := range []Style{Single, Double, Rounded, ASCII} {
		g := reflect.ValueOf(s.Glyphs())
		for i := 0; i < g.NumField(); i++ {
			if g.Field(i).String() == "" {
				t.Fatalf("style %v missing glyph %s", s, g.Type().Field(i).Name)
			}
		}
	}
}

func TestNoneDrawsNothing(t *testing.T) {
	if None.Enabled() {
		t.Fatalf("none must not draw")
	}
	if g := None.Glyphs(); g.Left != "" || g.TopLeft != "" {
		t.Fatalf("none glyphs must be empty, got %+v", g)
	}
	if s := Style(99); s.Enabled() {
		t.Fatalf("out of range style must not draw")
	}
}
