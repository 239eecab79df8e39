// Package ingredient parses free-text ingredient lines into
// quantity/unit/name triples and rewrites them for scaling and
// imperial/metric conversion.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/clipdish/recipe-clipper/models"
	"github.com/clipdish/recipe-clipper/pkg/quantity"
)

// Patterns are tried in priority order against the trimmed line; the first
// match wins. Unit tokens are kept as written so "cups" stays "cups".
var (
	// "2 1/2 cups flour"
	wholeTextFracRe = regexp.MustCompile(`^(\d+)\s+(\d+\s*/\s*\d+)\s*(` + quantity.UnitPattern + `)\b\s+(.+)$`)
	// "2½ cups flour"
	wholeGlyphRe = regexp.MustCompile(`^(\d+)\s*(` + quantity.GlyphClass() + `)\s*(` + quantity.UnitPattern + `)\b\s+(.+)$`)
	// "1/2 cup sugar"
	textFracRe = regexp.MustCompile(`^(\d+\s*/\s*\d+)\s*(` + quantity.UnitPattern + `)\b\s+(.+)$`)
	// "½ cup sugar"
	glyphFracRe = regexp.MustCompile(`^(` + quantity.GlyphClass() + `)\s*(` + quantity.UnitPattern + `)\b\s+(.+)$`)
	// "1.5 cups stock"
	numberUnitRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(` + quantity.UnitPattern + `)\b\s+(.+)$`)
	// "3 eggs" -- no unit at all
	numberOnlyRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(.+)$`)
)

// Parse converts one ingredient line into a ParsedIngredient. Lines with no
// recognizable quantity pattern come back with Parsed=false and the whole
// line as the name; Parse never fails.
func Parse(line string) models.ParsedIngredient {
	original := line
	trimmed := strings.TrimSpace(line)

	if m := wholeTextFracRe.FindStringSubmatch(trimmed); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		frac, ok := quantity.ParseFraction(m[2])
		if ok {
			return parsed(whole+frac, m[3], m[4], original)
		}
	}

	if m := wholeGlyphRe.FindStringSubmatch(trimmed); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		if frac, ok := quantity.ParseGlyphFraction(m[2]); ok {
			return parsed(whole+frac, m[3], m[4], original)
		}
	}

	if m := textFracRe.FindStringSubmatch(trimmed); m != nil {
		if frac, ok := quantity.ParseFraction(m[1]); ok {
			return parsed(frac, m[2], m[3], original)
		}
	}

	if m := glyphFracRe.FindStringSubmatch(trimmed); m != nil {
		if frac, ok := quantity.ParseGlyphFraction(m[1]); ok {
			return parsed(frac, m[2], m[3], original)
		}
	}

	if m := numberUnitRe.FindStringSubmatch(trimmed); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return parsed(value, m[2], m[3], original)
		}
	}

	if m := numberOnlyRe.FindStringSubmatch(trimmed); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return parsed(value, "", m[2], original)
		}
	}

	return models.ParsedIngredient{
		Name:     original,
		Original: original,
	}
}

func parsed(qty float64, unit, name, original string) models.ParsedIngredient {
	return models.ParsedIngredient{
		Quantity: qty,
		Unit:     strings.TrimSpace(unit),
		Name:     strings.TrimSpace(name),
		Original: original,
		Parsed:   true,
	}
}
