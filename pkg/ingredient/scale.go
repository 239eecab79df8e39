package ingredient

import (
	"strings"

	"github.com/clipdish/recipe-clipper/models"
	"github.com/clipdish/recipe-clipper/pkg/quantity"
	"github.com/clipdish/recipe-clipper/pkg/textscale"
)

// Scale rewrites an ingredient line with its quantity multiplied. Unparsed
// lines go through the free-text rewriter whole, which still catches
// embedded amounts like "2 eggs (120g)". Parsed lines are rebuilt as
// "<quantity> <unit> <name>", with the name itself run through the free-text
// rewriter so parenthetical weights inside it ("chicken breast (190g)") stay
// consistent.
func Scale(p models.ParsedIngredient, multiplier float64) string {
	if !p.Parsed {
		return textscale.ScaleText(p.Original, multiplier)
	}

	scaled := p.Quantity * multiplier
	name := textscale.ScaleText(p.Name, multiplier)

	parts := []string{quantity.Format(scaled)}
	if unit := adjustUnit(p.Unit, scaled); unit != "" {
		parts = append(parts, unit)
	}
	parts = append(parts, name)
	return strings.Join(parts, " ")
}

// adjustUnit fixes pluralization of full-word units for the new quantity;
// short forms (tbsp, ml, g) pass through as written.
func adjustUnit(unit string, value float64) string {
	base := strings.TrimSuffix(strings.ToLower(unit), "s")
	switch base {
	case "cup", "pint", "quart", "gallon", "tablespoon", "teaspoon":
		if value > 1 {
			return base + "s"
		}
		return base
	}
	return unit
}
