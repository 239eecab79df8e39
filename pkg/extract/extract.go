// Package extract converts raw recipe-page HTML into a canonical Recipe
// record by trying independent extraction strategies in fixed priority
// order: JSON-LD structured data, schema.org microdata, the WordPress
// Recipe Maker plugin markup, then hand-written per-site extractors.
package extract

import (
	"log/slog"
	"sync"

	"github.com/clipdish/recipe-clipper/models"
)

// ErrNoRecipe is the user-facing message when every strategy misses.
const ErrNoRecipe = "Unable to extract recipe from this URL"

// Strategy is one independent extraction heuristic. Extract returns nil on a
// miss; it never reports errors.
type Strategy interface {
	// Name is the human-readable tier name carried on results.
	Name() string
	// Key is the statistics counter key for this tier.
	Key() string
	// Confidence is the fixed reliability score attached to this tier's output.
	Confidence() float64
	// Extract parses the page, returning nil when the page doesn't match
	// this tier's markup.
	Extract(html, pageURL string) *models.Recipe
}

// statFailed counts extractions where every strategy missed.
const statFailed = "failed"

// Extractor runs the strategy chain and keeps per-instance tier counters.
// Safe for concurrent use; the counters are mutex-guarded.
type Extractor struct {
	strategies []Strategy
	logger     *slog.Logger

	mu     sync.Mutex
	counts map[string]int
}

// New builds an Extractor with the standard four-tier chain.
func New(logger *slog.Logger) *Extractor {
	return NewWithSites(logger, nil)
}

// NewWithSites builds an Extractor whose site-specific tier is limited to
// the named hosts. An empty list enables every registered site.
func NewWithSites(logger *slog.Logger, hosts []string) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{
		logger: logger,
		counts: make(map[string]int),
	}
	e.Register(jsonLDStrategy{})
	e.Register(microdataStrategy{})
	e.Register(wprmStrategy{})
	e.Register(siteStrategy{registry: filteredRegistry(hosts)})
	return e
}

// Register appends a strategy to the end of the chain.
func (e *Extractor) Register(s Strategy) {
	e.strategies = append(e.strategies, s)
}

// Extract tries each strategy in order and returns the first hit with a
// non-empty title. Strategy panics are contained here and treated as misses;
// extraction never propagates a failure to the caller.
func (e *Extractor) Extract(html, pageURL string) models.ExtractionResult {
	for _, s := range e.strategies {
		recipe := e.try(s, html, pageURL)
		if recipe == nil || recipe.Title == "" {
			continue
		}
		e.bump(s.Key())
		return models.ExtractionResult{
			Success: true,
			Data:    recipe,
			Source:  s.Name(),
		}
	}

	e.bump(statFailed)
	return models.ExtractionResult{
		Success: false,
		Error:   ErrNoRecipe,
	}
}

func (e *Extractor) try(s Strategy, html, pageURL string) (recipe *models.Recipe) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("extraction strategy panicked",
				"strategy", s.Name(), "url", pageURL, "panic", r)
			recipe = nil
		}
	}()
	return s.Extract(html, pageURL)
}

func (e *Extractor) bump(key string) {
	e.mu.Lock()
	e.counts[key]++
	e.mu.Unlock()
}

// Stats is a read-only snapshot of the extractor's tier counters.
type Stats struct {
	Counts  map[string]int     `json:"counts"`
	Total   int                `json:"total"`
	Percent map[string]float64 `json:"percent"`
}

// Stats returns a snapshot of the per-tier counters with percentages.
// Counters live for the lifetime of the Extractor instance.
func (e *Extractor) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := Stats{
		Counts:  make(map[string]int, len(e.counts)),
		Percent: make(map[string]float64, len(e.counts)),
	}
	for k, v := range e.counts {
		snapshot.Counts[k] = v
		snapshot.Total += v
	}
	for k, v := range snapshot.Counts {
		if snapshot.Total > 0 {
			snapshot.Percent[k] = float64(v) / float64(snapshot.Total) * 100
		}
	}
	return snapshot
}
