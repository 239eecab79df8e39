package ingredient

import (
	"math"
	"testing"

	"github.com/clipdish/recipe-clipper/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want models.ParsedIngredient
	}{
		{
			name: "whole plus text fraction with unit",
			line: "2 1/2 cups flour",
			want: models.ParsedIngredient{Quantity: 2.5, Unit: "cups", Name: "flour", Parsed: true},
		},
		{
			name: "whole plus glyph fraction with unit",
			line: "2½ cups flour",
			want: models.ParsedIngredient{Quantity: 2.5, Unit: "cups", Name: "flour", Parsed: true},
		},
		{
			name: "bare text fraction",
			line: "1/2 cup sugar",
			want: models.ParsedIngredient{Quantity: 0.5, Unit: "cup", Name: "sugar", Parsed: true},
		},
		{
			name: "bare glyph fraction",
			line: "¾ tsp salt",
			want: models.ParsedIngredient{Quantity: 0.75, Unit: "tsp", Name: "salt", Parsed: true},
		},
		{
			name: "decimal with unit",
			line: "1.5 lbs chicken thighs",
			want: models.ParsedIngredient{Quantity: 1.5, Unit: "lbs", Name: "chicken thighs", Parsed: true},
		},
		{
			name: "integer with no unit",
			line: "3 eggs",
			want: models.ParsedIngredient{Quantity: 3, Unit: "", Name: "eggs", Parsed: true},
		},
		{
			name: "long-form unit",
			line: "2 tablespoons olive oil",
			want: models.ParsedIngredient{Quantity: 2, Unit: "tablespoons", Name: "olive oil", Parsed: true},
		},
		{
			name: "fl oz unit",
			line: "4 fl oz cream",
			want: models.ParsedIngredient{Quantity: 4, Unit: "fl oz", Name: "cream", Parsed: true},
		},
		{
			name: "unit letter inside word is not a unit",
			line: "2 green onions",
			want: models.ParsedIngredient{Quantity: 2, Unit: "", Name: "green onions", Parsed: true},
		},
		{
			name: "no quantity at all",
			line: "salt to taste",
			want: models.ParsedIngredient{Quantity: 0, Unit: "", Name: "salt to taste", Parsed: false},
		},
		{
			name: "leading whitespace",
			line: "  1 cup water",
			want: models.ParsedIngredient{Quantity: 1, Unit: "cup", Name: "water", Parsed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			if got.Original != tt.line {
				t.Errorf("Original = %q, want %q", got.Original, tt.line)
			}
			if got.Parsed != tt.want.Parsed {
				t.Fatalf("Parsed = %v, want %v", got.Parsed, tt.want.Parsed)
			}
			if math.Abs(got.Quantity-tt.want.Quantity) > 1e-9 {
				t.Errorf("Quantity = %v, want %v", got.Quantity, tt.want.Quantity)
			}
			if got.Unit != tt.want.Unit {
				t.Errorf("Unit = %q, want %q", got.Unit, tt.want.Unit)
			}
			if got.Name != tt.want.Name {
				t.Errorf("Name = %q, want %q", got.Name, tt.want.Name)
			}
		})
	}
}

func TestParseUnparsedKeepsLineAsName(t *testing.T) {
	got := Parse("a pinch of saffron")
	if got.Parsed {
		t.Fatal("expected Parsed=false")
	}
	if got.Name != "a pinch of saffron" || got.Quantity != 0 || got.Unit != "" {
		t.Errorf("unexpected fallback triple: %+v", got)
	}
}
