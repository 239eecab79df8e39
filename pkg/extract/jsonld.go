package extract

import (
	"encoding/json"
	"html"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/clipdish/recipe-clipper/models"
)

// maxJSONDepth bounds the recursive @type search so a pathological document
// cannot blow the stack.
const maxJSONDepth = 32

// jsonLDStrategy extracts recipes from schema.org JSON-LD script blocks.
type jsonLDStrategy struct{}

func (jsonLDStrategy) Name() string        { return "JSON-LD" }
func (jsonLDStrategy) Key() string         { return "json_ld" }
func (jsonLDStrategy) Confidence() float64 { return 0.99 }

func (s jsonLDStrategy) Extract(htmlStr, pageURL string) *models.Recipe {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil
	}

	var node map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		raw := html.UnescapeString(sel.Text())

		var parsed any
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return true // malformed block, keep trying the rest
		}
		if found := findRecipeNode(parsed, 0); found != nil {
			node = found
			return false
		}
		return true
	})

	if node == nil {
		return nil
	}
	return s.mapRecipe(node, pageURL)
}

// findRecipeNode walks a parsed JSON value depth-first looking for the first
// node typed as a schema.org Recipe. Objects check their own @type first,
// then @graph, then the remaining object-valued properties in key order;
// arrays are searched element by element.
func findRecipeNode(v any, depth int) map[string]any {
	if depth > maxJSONDepth {
		return nil
	}

	switch node := v.(type) {
	case map[string]any:
		if isRecipeType(node["@type"]) {
			return node
		}
		if graph, ok := node["@graph"].([]any); ok {
			for _, child := range graph {
				if found := findRecipeNode(child, depth+1); found != nil {
					return found
				}
			}
		}
		keys := make([]string, 0, len(node))
		for k := range node {
			if k == "@graph" {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch node[k].(type) {
			case map[string]any, []any:
				if found := findRecipeNode(node[k], depth+1); found != nil {
					return found
				}
			}
		}
	case []any:
		for _, child := range node {
			if found := findRecipeNode(child, depth+1); found != nil {
				return found
			}
		}
	}
	return nil
}

// isRecipeType matches @type values of "Recipe" or arrays containing it.
func isRecipeType(v any) bool {
	switch t := v.(type) {
	case string:
		return t == "Recipe"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func (s jsonLDStrategy) mapRecipe(node map[string]any, pageURL string) *models.Recipe {
	recipe := &models.Recipe{
		Title:            stringify(node["name"]),
		Ingredients:      SplitSections(stringSlice(node["recipeIngredient"])),
		Instructions:     flattenInstructions(node["recipeInstructions"]),
		PrepTime:         durationField(node["prepTime"]),
		CookTime:         durationField(node["cookTime"]),
		TotalTime:        durationField(node["totalTime"]),
		Servings:         stringify(node["recipeYield"]),
		Image:            imageURL(node["image"]),
		ExtractionMethod: s.Name(),
		Confidence:       s.Confidence(),
		SourceURL:        pageURL,
	}

	if nutrition, ok := node["nutrition"].(map[string]any); ok {
		cleaned := make(map[string]any, len(nutrition))
		for k, v := range nutrition {
			if k == "@type" {
				continue
			}
			cleaned[k] = v
		}
		if len(cleaned) > 0 {
			recipe.Nutrition = cleaned
		}
	}
	return recipe
}

// stringSlice coerces a JSON value into a list of cleaned strings.
func stringSlice(v any) []string {
	var out []string
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case string:
		out = append(out, val)
	}
	return out
}

// minInstructionLen drops instruction fragments that are too short to be a
// real step, like bare "Step 1" leftovers.
const minInstructionLen = 10

// flattenInstructions normalizes the recipeInstructions value: plain strings,
// HowToStep objects, and HowToSection wrappers all flatten to an ordered list
// of step texts.
func flattenInstructions(v any) []string {
	var steps []string

	var walk func(any)
	walk = func(item any) {
		switch node := item.(type) {
		case string:
			appendStep(&steps, node)
		case []any:
			for _, child := range node {
				walk(child)
			}
		case map[string]any:
			if items, ok := node["itemListElement"].([]any); ok {
				for _, child := range items {
					walk(child)
				}
				return
			}
			for _, key := range []string{"text", "name", "description"} {
				if s, ok := node[key].(string); ok && s != "" {
					appendStep(&steps, s)
					return
				}
			}
		}
	}
	walk(v)
	return steps
}

func appendStep(steps *[]string, raw string) {
	text := stripStepPrefix(cleanText(raw))
	if len(text) > minInstructionLen {
		*steps = append(*steps, text)
	}
}
