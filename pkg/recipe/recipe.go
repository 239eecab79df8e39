// Package recipe exposes the whole-record operations consumed by callers:
// parsing every ingredient line of a recipe, then rescaling or
// unit-converting the full record while preserving section and item order.
// Every operation returns derived data; the input recipe is never modified.
package recipe

import (
	"strconv"
	"strings"

	"github.com/clipdish/recipe-clipper/models"
	"github.com/clipdish/recipe-clipper/pkg/ingredient"
	"github.com/clipdish/recipe-clipper/pkg/textscale"
)

// ParseIngredients parses every line of every section, keeping order.
func ParseIngredients(ing models.Ingredients) models.ParsedIngredients {
	parsed := make(models.ParsedIngredients, 0, len(ing))
	for _, sec := range ing {
		out := models.ParsedSection{
			Name:  sec.Name,
			Items: make([]models.ParsedIngredient, 0, len(sec.Items)),
		}
		for _, line := range sec.Items {
			out.Items = append(out.Items, ingredient.Parse(line))
		}
		parsed = append(parsed, out)
	}
	return parsed
}

// ScaleIngredients rewrites every parsed line at the given multiplier.
func ScaleIngredients(parsed models.ParsedIngredients, multiplier float64) models.ScaledIngredients {
	scaled := make(models.ScaledIngredients, 0, len(parsed))
	for _, sec := range parsed {
		out := models.ScaledSection{
			Name:  sec.Name,
			Items: make([]string, 0, len(sec.Items)),
		}
		for _, item := range sec.Items {
			out.Items = append(out.Items, ingredient.Scale(item, multiplier))
		}
		scaled = append(scaled, out)
	}
	return scaled
}

// ScaleInstructions rescales quantity mentions inside each instruction step.
func ScaleInstructions(instructions []string, multiplier float64) []string {
	out := make([]string, 0, len(instructions))
	for _, step := range instructions {
		out = append(out, textscale.ScaleText(step, multiplier))
	}
	return out
}

// ConvertIngredients rewrites every parsed line in the target unit system.
func ConvertIngredients(parsed models.ParsedIngredients, toMetric bool) models.ScaledIngredients {
	converted := make(models.ScaledIngredients, 0, len(parsed))
	for _, sec := range parsed {
		out := models.ScaledSection{
			Name:  sec.Name,
			Items: make([]string, 0, len(sec.Items)),
		}
		for _, item := range sec.Items {
			out.Items = append(out.Items, ingredient.Convert(item, toMetric))
		}
		converted = append(converted, out)
	}
	return converted
}

// Scale produces a derived copy of a recipe with ingredients, instructions
// and servings rescaled. The original record is untouched; always scale from
// the pristine extraction, not from a previously scaled copy.
func Scale(r *models.Recipe, multiplier float64) *models.Recipe {
	scaled := *r

	parsed := ParseIngredients(r.Ingredients)
	rewritten := ScaleIngredients(parsed, multiplier)
	scaled.Ingredients = make(models.Ingredients, 0, len(rewritten))
	for _, sec := range rewritten {
		scaled.Ingredients = append(scaled.Ingredients, models.IngredientSection{
			Name:  sec.Name,
			Items: sec.Items,
		})
	}

	scaled.Instructions = ScaleInstructions(r.Instructions, multiplier)
	scaled.Servings = scaleServings(r.Servings, multiplier)
	return &scaled
}

// ConvertUnits produces a derived copy with every ingredient line in the
// target unit system.
func ConvertUnits(r *models.Recipe, toMetric bool) *models.Recipe {
	converted := *r

	parsed := ParseIngredients(r.Ingredients)
	rewritten := ConvertIngredients(parsed, toMetric)
	converted.Ingredients = make(models.Ingredients, 0, len(rewritten))
	for _, sec := range rewritten {
		converted.Ingredients = append(converted.Ingredients, models.IngredientSection{
			Name:  sec.Name,
			Items: sec.Items,
		})
	}
	return &converted
}

// scaleServings multiplies a bare integer servings value; ranged or worded
// servings strings ("4 to 6", "one loaf") pass through unchanged.
func scaleServings(servings string, multiplier float64) string {
	trimmed := strings.TrimSpace(servings)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return servings
	}
	scaled := float64(n) * multiplier
	if scaled == float64(int(scaled)) {
		return strconv.Itoa(int(scaled))
	}
	return strconv.FormatFloat(scaled, 'f', 1, 64)
}
