package recipe

import (
	"testing"

	"github.com/clipdish/recipe-clipper/models"
)

func sampleRecipe() *models.Recipe {
	ing := models.NewIngredients()
	ing = ing.Append(models.MainSection, "1 cup sugar")
	ing = ing.Append(models.MainSection, "3 eggs")
	ing = ing.Append("Sauce", "1/2 cup cream")
	return &models.Recipe{
		Title:        "Custard",
		Ingredients:  ing,
		Instructions: []string{"Whisk 3 eggs with the sugar.", "Warm the cream (120 ml) gently."},
		Servings:     "4",
	}
}

func TestScaleRecipe(t *testing.T) {
	original := sampleRecipe()
	scaled := Scale(original, 2)

	if got := scaled.Ingredients.Section(models.MainSection); got[0] != "2 cups sugar" || got[1] != "6 eggs" {
		t.Errorf("main = %v", got)
	}
	if got := scaled.Ingredients.Section("Sauce"); got[0] != "1 cup cream" {
		t.Errorf("Sauce = %v", got)
	}
	if scaled.Instructions[0] != "Whisk 6 eggs with the sugar." {
		t.Errorf("instruction 0 = %q", scaled.Instructions[0])
	}
	if scaled.Instructions[1] != "Warm the cream (240 ml) gently." {
		t.Errorf("instruction 1 = %q", scaled.Instructions[1])
	}
	if scaled.Servings != "8" {
		t.Errorf("Servings = %q", scaled.Servings)
	}

	// The original record must be untouched.
	if got := original.Ingredients.Section(models.MainSection); got[0] != "1 cup sugar" {
		t.Errorf("original mutated: %v", got)
	}
	if original.Servings != "4" {
		t.Errorf("original servings mutated: %q", original.Servings)
	}
}

func TestScaleRecipeIdentity(t *testing.T) {
	original := sampleRecipe()
	scaled := Scale(original, 1)

	for i, step := range original.Instructions {
		if scaled.Instructions[i] != step {
			t.Errorf("identity scale changed instruction %d: %q", i, scaled.Instructions[i])
		}
	}
}

func TestConvertUnitsRecipe(t *testing.T) {
	original := sampleRecipe()
	converted := ConvertUnits(original, true)

	if got := converted.Ingredients.Section(models.MainSection); got[0] != "236.59 ml sugar" {
		t.Errorf("main[0] = %q", got[0])
	}
	// Unitless lines are untouched.
	if got := converted.Ingredients.Section(models.MainSection); got[1] != "3 eggs" {
		t.Errorf("main[1] = %q", got[1])
	}
	if got := converted.Ingredients.Section("Sauce"); got[0] != "118.29 ml cream" {
		t.Errorf("Sauce[0] = %q", got[0])
	}
}

func TestParseIngredientsPreservesOrder(t *testing.T) {
	parsed := ParseIngredients(sampleRecipe().Ingredients)
	if len(parsed) != 2 || parsed[0].Name != models.MainSection || parsed[1].Name != "Sauce" {
		t.Fatalf("section order = %+v", parsed)
	}
	if !parsed[0].Items[0].Parsed || parsed[0].Items[0].Quantity != 1 {
		t.Errorf("first item = %+v", parsed[0].Items[0])
	}
	if parsed[0].Items[0].Original != "1 cup sugar" {
		t.Errorf("Original = %q", parsed[0].Items[0].Original)
	}
}

func TestScaleServings(t *testing.T) {
	tests := []struct {
		in         string
		multiplier float64
		want       string
	}{
		{"4", 2, "8"},
		{"4", 0.5, "2"},
		{"3", 0.5, "1.5"},
		{"4 to 6", 2, "4 to 6"},
		{"", 2, ""},
	}
	for _, tt := range tests {
		if got := scaleServings(tt.in, tt.multiplier); got != tt.want {
			t.Errorf("scaleServings(%q, %v) = %q, want %q", tt.in, tt.multiplier, got, tt.want)
		}
	}
}
