package ingredient

import (
	"strings"

	"github.com/clipdish/recipe-clipper/models"
	"github.com/clipdish/recipe-clipper/pkg/quantity"
)

// Convert rewrites an ingredient line in the other measurement system,
// pivoting volume through milliliters and weight through grams. Lines that
// are unparsed, unitless, zero-quantity, or already in the target system
// come back unchanged.
func Convert(p models.ParsedIngredient, toMetric bool) string {
	if !p.Parsed || p.Unit == "" || p.Quantity == 0 {
		return p.Original
	}

	kind := quantity.Kind(p.Unit)
	if kind == "" {
		return p.Original
	}
	if quantity.IsMetric(p.Unit) == toMetric {
		return p.Original
	}

	pivot, ok := quantity.ToPivot(p.Quantity, p.Unit)
	if !ok {
		return p.Original
	}

	var value float64
	var unit string
	if toMetric {
		value, unit = quantity.PivotToMetric(pivot, kind)
	} else {
		value, unit = quantity.PivotToImperial(pivot, kind)
	}

	parts := []string{quantity.Format(value), quantity.PluralizeUnit(unit, value)}
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	return strings.Join(parts, " ")
}
