package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/clipdish/recipe-clipper/models"
)

// wprmStrategy extracts recipes rendered by the WordPress Recipe Maker
// plugin, which emits a stable wprm-* class structure.
type wprmStrategy struct{}

func (wprmStrategy) Name() string        { return "WordPress Plugin" }
func (wprmStrategy) Key() string         { return "wp_plugin" }
func (wprmStrategy) Confidence() float64 { return 0.90 }

func (s wprmStrategy) Extract(htmlStr, pageURL string) *models.Recipe {
	if !strings.Contains(htmlStr, "wprm-recipe-container") && !strings.Contains(htmlStr, "wprm-recipe") {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil
	}

	container := doc.Find("div.wprm-recipe-container").First()
	if container.Length() == 0 {
		container = doc.Find(".wprm-recipe").First()
	}
	if container.Length() == 0 {
		return nil
	}

	title := cleanText(container.Find(".wprm-recipe-name").First().Text())

	ingredients := models.NewIngredients()
	groups := container.Find(".wprm-recipe-ingredient-group")
	if groups.Length() > 0 {
		groups.Each(func(_ int, group *goquery.Selection) {
			section := cleanText(group.Find(".wprm-recipe-ingredient-group-name, .wprm-recipe-group-name").First().Text())
			if section == "" {
				section = models.MainSection
			}
			group.Find(".wprm-recipe-ingredient").Each(func(_ int, item *goquery.Selection) {
				if text := cleanText(item.Text()); text != "" {
					ingredients = ingredients.Append(section, text)
				}
			})
		})
	} else {
		container.Find(".wprm-recipe-ingredient").Each(func(_ int, item *goquery.Selection) {
			if text := cleanText(item.Text()); text != "" {
				ingredients = ingredients.Append(models.MainSection, text)
			}
		})
	}
	ingredients = ingredients.Compact()

	if title == "" || ingredients.ItemCount() == 0 {
		return nil
	}

	var instructions []string
	container.Find(".wprm-recipe-instruction").Each(func(_ int, sel *goquery.Selection) {
		if text := cleanText(sel.Text()); text != "" {
			instructions = append(instructions, text)
		}
	})

	image, _ := container.Find(`img[class*="wprm-recipe-image"]`).First().Attr("src")
	if image == "" {
		image, _ = container.Find(".wprm-recipe-image img").First().Attr("src")
	}

	return &models.Recipe{
		Title:            title,
		Ingredients:      ingredients,
		Instructions:     instructions,
		Servings:         cleanText(container.Find(".wprm-recipe-servings").First().Text()),
		PrepTime:         cleanText(container.Find(".wprm-recipe-prep-time-container .wprm-recipe-time").First().Text()),
		CookTime:         cleanText(container.Find(".wprm-recipe-cook-time-container .wprm-recipe-time").First().Text()),
		TotalTime:        cleanText(container.Find(".wprm-recipe-total-time-container .wprm-recipe-time").First().Text()),
		Image:            image,
		ExtractionMethod: s.Name(),
		Confidence:       s.Confidence(),
		SourceURL:        pageURL,
	}
}
