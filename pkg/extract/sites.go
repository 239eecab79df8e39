package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/clipdish/recipe-clipper/models"
)

// siteRules is a table-driven extractor for one publisher's markup: CSS
// selectors for the pieces a recipe page always renders, plus a label/value
// details panel for timing and servings.
type siteRules struct {
	title        string
	ingredients  string
	instructions string
	image        string
	detailItem   string
	detailLabel  string
	detailValue  string
}

// siteRegistry maps a www.-stripped hostname to its extraction rules. New
// sites register here without touching the dispatcher.
var siteRegistry = map[string]siteRules{
	"allrecipes.com": {
		title:        "h1.article-heading, h1",
		ingredients:  ".mm-recipes-structured-ingredients__list-item, .mntl-structured-ingredients__list-item",
		instructions: ".mntl-sc-block-group--OL .mntl-sc-block-html, .recipe-directions__list li",
		image:        ".primary-image img, img.mntl-primary-image",
		detailItem:   ".mm-recipes-details__item, .mntl-recipe-details__item",
		detailLabel:  ".mm-recipes-details__label, .mntl-recipe-details__label",
		detailValue:  ".mm-recipes-details__value, .mntl-recipe-details__value",
	},
}

// filteredRegistry returns the subset of siteRegistry for the named hosts,
// or the whole registry when hosts is empty.
func filteredRegistry(hosts []string) map[string]siteRules {
	if len(hosts) == 0 {
		return siteRegistry
	}
	filtered := make(map[string]siteRules, len(hosts))
	for _, host := range hosts {
		key := strings.TrimPrefix(strings.ToLower(host), "www.")
		if rules, ok := siteRegistry[key]; ok {
			filtered[key] = rules
		}
	}
	return filtered
}

// siteStrategy dispatches to a hand-written per-domain extractor when one is
// registered for the page's host.
type siteStrategy struct {
	registry map[string]siteRules
}

func (siteStrategy) Name() string        { return "Site-Specific" }
func (siteStrategy) Key() string         { return "site_specific" }
func (siteStrategy) Confidence() float64 { return 0.85 }

// hostKey normalizes a page URL to its registry key: lowercase hostname with
// any leading www. stripped.
func hostKey(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

func (s siteStrategy) Extract(htmlStr, pageURL string) *models.Recipe {
	rules, ok := s.registry[hostKey(pageURL)]
	if !ok {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil
	}

	title := cleanText(doc.Find(rules.title).First().Text())
	if title == "" {
		return nil
	}

	var lines []string
	doc.Find(rules.ingredients).Each(func(_ int, sel *goquery.Selection) {
		lines = append(lines, sel.Text())
	})
	ingredients := SplitSections(lines)
	if ingredients.ItemCount() == 0 {
		return nil
	}

	var instructions []string
	doc.Find(rules.instructions).Each(func(_ int, sel *goquery.Selection) {
		if text := cleanText(sel.Text()); text != "" {
			instructions = append(instructions, text)
		}
	})

	recipe := &models.Recipe{
		Title:            title,
		Ingredients:      ingredients,
		Instructions:     instructions,
		ExtractionMethod: s.Name(),
		Confidence:       s.Confidence(),
		SourceURL:        pageURL,
	}

	if rules.image != "" {
		if src, ok := doc.Find(rules.image).First().Attr("src"); ok {
			recipe.Image = src
		}
	}

	// Details panel: ordered label/value pairs for timing and servings.
	doc.Find(rules.detailItem).Each(func(_ int, item *goquery.Selection) {
		label := strings.ToLower(cleanText(item.Find(rules.detailLabel).First().Text()))
		value := cleanText(item.Find(rules.detailValue).First().Text())
		if value == "" {
			return
		}
		switch {
		case strings.Contains(label, "prep"):
			recipe.PrepTime = value
		case strings.Contains(label, "cook"):
			recipe.CookTime = value
		case strings.Contains(label, "total"):
			recipe.TotalTime = value
		case strings.Contains(label, "serving") || strings.Contains(label, "yield"):
			recipe.Servings = value
		}
	})

	return recipe
}
