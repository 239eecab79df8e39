// Package detector enriches an extracted recipe with page-level metadata
// that the structured markup rarely carries: publisher name, author,
// publish date, a fallback image, and the page language.
package detector

import (
	"net/url"
	"strings"
	"sync"

	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// Enrichment holds the cheap signals detected from the raw page.
type Enrichment struct {
	SiteName      string `json:"site_name,omitempty"`
	Author        string `json:"author,omitempty"`
	PublishedTime string `json:"published_time,omitempty"`
	Image         string `json:"image,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`

	// Language is the ISO 639-1 code detected from the recipe text. The
	// quantity vocabulary is English-only, so non-English pages are flagged
	// for the caller to warn about.
	Language string `json:"language,omitempty"`
	English  bool   `json:"english"`
}

var (
	languageOnce     sync.Once
	languageDetector lingua.LanguageDetector
)

// detectorFor lazily builds the lingua detector; model loading is expensive
// and only needed once per process.
func detectorFor() lingua.LanguageDetector {
	languageOnce.Do(func() {
		languages := []lingua.Language{
			lingua.English,
			lingua.Spanish,
			lingua.French,
			lingua.German,
			lingua.Italian,
			lingua.Portuguese,
		}
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build()
	})
	return languageDetector
}

// Analyze runs readability and language detection over the raw page. Both
// signals are best-effort; a page readability cannot parse still gets
// language detection over the extracted recipe text.
func Analyze(rawURL, html, title string, instructions []string) *Enrichment {
	e := &Enrichment{English: true}

	if parsedURL, err := url.Parse(rawURL); err == nil {
		parser := readability.NewParser()
		if article, err := parser.Parse(strings.NewReader(html), parsedURL); err == nil {
			e.SiteName = article.SiteName
			e.Author = article.Byline
			e.Excerpt = article.Excerpt
			e.Image = article.Image
			if article.PublishedTime != nil {
				e.PublishedTime = article.PublishedTime.Format("2006-01-02")
			}
		}
	}

	sample := strings.TrimSpace(title + " " + strings.Join(instructions, " "))
	if sample != "" {
		if lang, ok := detectorFor().DetectLanguageOf(sample); ok {
			e.Language = strings.ToLower(lang.IsoCode639_1().String())
			e.English = lang == lingua.English
		}
	}

	return e
}
