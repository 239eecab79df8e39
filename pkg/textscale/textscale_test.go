package textscale

import (
	"strings"
	"testing"
)

func TestScaleTextIdentity(t *testing.T) {
	inputs := []string{
		"Add flour (120g) and mix.",
		"Beat 3 eggs with 1/2 cup sugar.",
		"Simmer for 20 minutes.",
		"",
	}
	for _, in := range inputs {
		if got := ScaleText(in, 1); got != in {
			t.Errorf("ScaleText(%q, 1) = %q, want input unchanged", in, got)
		}
	}
}

func TestScaleTextParenthetical(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		multiplier float64
		want       string
	}{
		{"single paren weight", "Add flour (120g)", 2, "Add flour (240 g)"},
		{"paren with space", "Add flour (120 g)", 2, "Add flour (240 g)"},
		{"nested parens preserved", "Add flour ((120g))", 2, "Add flour ((240 g))"},
		{"paren fraction", "Add butter (1/2 cup) now", 2, "Add butter (1 cup) now"},
		{"paren mixed number", "Use stock (1 1/2 cups) here", 2, "Use stock (3 cups) here"},
		{"prose around parens", "Sear the chicken (450g) until browned.", 0.5, "Sear the chicken (225 g) until browned."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleText(tt.in, tt.multiplier); got != tt.want {
				t.Errorf("ScaleText(%q, %v) = %q, want %q", tt.in, tt.multiplier, got, tt.want)
			}
		})
	}
}

func TestScaleTextBare(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		multiplier float64
		want       string
	}{
		{"bare amount with unit", "Pour in 1 cup of broth.", 2, "Pour in 2 cup of broth."},
		{"bare fraction", "Add 1/2 tsp of salt.", 2, "Add 1 tsp of salt."},
		{"mixed number", "Use 2 1/2 cups of flour.", 2, "Use 5 cups of flour."},
		{"countable noun", "Crack 3 eggs into the bowl.", 2, "Crack 6 eggs into the bowl."},
		{"countable singular", "Dice 1 onion finely.", 3, "Dice 3 onion finely."},
		{"plain duration untouched", "Bake for 20 minutes.", 2, "Bake for 20 minutes."},
		{"fraction halves to glyph", "Add 1/2 cup sugar.", 0.5, "Add ¼ cup sugar."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleText(tt.in, tt.multiplier); got != tt.want {
				t.Errorf("ScaleText(%q, %v) = %q, want %q", tt.in, tt.multiplier, got, tt.want)
			}
		})
	}
}

// Rescaling already-rewritten parenthetical output must not double the
// parentheses or leak sentinel text.
func TestScaleTextNoMarkerLeak(t *testing.T) {
	out := ScaleText("Add flour (120g) and 2 eggs", 2)
	want := "Add flour (240 g) and 4 eggs"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
	for _, forbidden := range []string{openMark, closeMark, "((", "))"} {
		if strings.Contains(out, forbidden) {
			t.Errorf("output %q contains %q", out, forbidden)
		}
	}
}

// Glyph fractions produced by the formatter are never re-matched, so a second
// pass over rewritten output leaves glyph quantities alone.
func TestScaleTextGlyphFractionsNotRescaled(t *testing.T) {
	first := ScaleText("Add 1/2 cup sugar.", 0.5)
	if first != "Add ¼ cup sugar." {
		t.Fatalf("first pass = %q", first)
	}
	second := ScaleText(first, 2)
	if second != first {
		t.Errorf("glyph fraction was rescaled: %q -> %q", first, second)
	}
}
