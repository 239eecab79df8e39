package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/clipdish/recipe-clipper/models"
)

// microdataStrategy extracts recipes marked up with schema.org microdata
// attributes (itemtype/itemprop).
type microdataStrategy struct{}

func (microdataStrategy) Name() string        { return "Microdata" }
func (microdataStrategy) Key() string         { return "microdata" }
func (microdataStrategy) Confidence() float64 { return 0.95 }

func (s microdataStrategy) Extract(htmlStr, pageURL string) *models.Recipe {
	if !strings.Contains(htmlStr, "schema.org/Recipe") {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil
	}

	scope := doc.Find(`[itemtype*="schema.org/Recipe"]`).First()
	if scope.Length() == 0 {
		return nil
	}

	title := propValue(scope.Find(`[itemprop="name"]`).First())

	var lines []string
	scope.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, sel *goquery.Selection) {
		lines = append(lines, propValue(sel))
	})
	ingredients := SplitSections(lines)

	// A recipe scope with no title or no ingredients is a miss, not an error.
	if title == "" || ingredients.ItemCount() == 0 {
		return nil
	}

	var instructions []string
	scope.Find(`[itemprop="recipeInstructions"]`).Each(func(_ int, sel *goquery.Selection) {
		if text := cleanText(sel.Text()); text != "" {
			instructions = append(instructions, text)
		}
	})

	image, _ := scope.Find(`[itemprop="image"]`).First().Attr("src")
	if image == "" {
		image, _ = scope.Find(`[itemprop="image"]`).First().Attr("content")
	}

	return &models.Recipe{
		Title:            title,
		Ingredients:      ingredients,
		Instructions:     instructions,
		PrepTime:         parseISODuration(propValue(scope.Find(`[itemprop="prepTime"]`).First())),
		CookTime:         parseISODuration(propValue(scope.Find(`[itemprop="cookTime"]`).First())),
		TotalTime:        parseISODuration(propValue(scope.Find(`[itemprop="totalTime"]`).First())),
		Servings:         propValue(scope.Find(`[itemprop="recipeYield"]`).First()),
		Image:            image,
		ExtractionMethod: s.Name(),
		Confidence:       s.Confidence(),
		SourceURL:        pageURL,
	}
}
