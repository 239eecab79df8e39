// Package extract implements the extract CLI command: fetch (or read) page
// HTML for one or more URLs, run the tiered extractor, and persist the
// results.
package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/clipdish/recipe-clipper/models"
	"github.com/clipdish/recipe-clipper/pkg/caching"
	"github.com/clipdish/recipe-clipper/pkg/db"
	"github.com/clipdish/recipe-clipper/pkg/detector"
	extractor "github.com/clipdish/recipe-clipper/pkg/extract"
	"github.com/clipdish/recipe-clipper/pkg/fetcher"
	"github.com/clipdish/recipe-clipper/pkg/storage"
)

// job is one URL to process.
type job struct {
	URL string
}

// result is the outcome of one processed URL.
type result struct {
	URL      string                  `json:"url"`
	Success  bool                    `json:"success"`
	Source   string                  `json:"source,omitempty"`
	Title    string                  `json:"title,omitempty"`
	FilePath string                  `json:"file_path,omitempty"`
	Language string                  `json:"language,omitempty"`
	Error    string                  `json:"error,omitempty"`
	Elapsed  string                  `json:"elapsed"`
	Enriched *detector.Enrichment    `json:"enrichment,omitempty"`
	Result   models.ExtractionResult `json:"-"`
}

// summary is the final JSON report written to stdout.
type summary struct {
	Results []result           `json:"results"`
	Total   int                `json:"total"`
	Failed  int                `json:"failed"`
	Percent map[string]float64 `json:"tier_percent"`
}

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("format") {
		config.Format = c.String("format")
	}
	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}

	urls := c.Args().Slice()
	if len(urls) == 0 {
		return cli.Exit("no URLs given", 1)
	}

	cache, err := caching.NewCache(config.CacheDir, config.TTL())
	if err != nil {
		logger.Error("failed to initialize cache", "error", err)
		os.Exit(2)
	}

	store, err := storage.NewStorage(config.OutputDir)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(2)
	}

	database, err := db.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	f := fetcher.NewFetcher()
	// One shared extractor; its tier counters are mutex-guarded.
	ex := extractor.NewWithSites(logger, config.Sites)

	jobs := make(chan job, len(urls))
	results := make(chan result, len(urls))

	var wg sync.WaitGroup
	workers := config.WorkerCount
	if workers < 1 {
		workers = 1
	}
	if workers > len(urls) {
		workers = len(urls)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker(i, logger, f, cache, ex, &wg, jobs, results)
	}

	for _, u := range urls {
		jobs <- job{URL: u}
	}
	close(jobs)
	wg.Wait()
	close(results)

	report := summary{Percent: ex.Stats().Percent}
	for r := range results {
		report.Total++
		if !r.Success {
			report.Failed++
		} else {
			r = persist(logger, store, database, config.Format, r)
		}

		// Fetch failures never reached the extractor; only log real attempts.
		if r.Success || r.Error == extractor.ErrNoRecipe {
			_ = database.RecordExtraction(r.URL, tierKey(r.Source), r.Success, r.Error)
		}
		report.Results = append(report.Results, r)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	fmt.Println(string(out))

	if report.Failed == report.Total {
		return cli.Exit("", 1)
	}
	return nil
}

// worker processes jobs from the jobs channel and sends results back.
func worker(id int, logger *slog.Logger, f *fetcher.Fetcher, cache *caching.Cache,
	ex *extractor.Extractor, wg *sync.WaitGroup, jobs <-chan job, results chan<- result) {
	defer wg.Done()

	for j := range jobs {
		started := time.Now()
		logger.Info("worker started job", "worker", id, "url", j.URL)

		html, hit := cache.Get(j.URL)
		if !hit {
			var err error
			html, err = f.GetHTML(j.URL)
			if err != nil {
				logger.Error("fetch failed", "worker", id, "url", j.URL, "error", err)
				results <- result{
					URL:     j.URL,
					Error:   err.Error(),
					Elapsed: time.Since(started).String(),
				}
				continue
			}
			if err := cache.Set(j.URL, html); err != nil {
				logger.Warn("cache write failed", "url", j.URL, "error", err)
			}
		}

		res := ex.Extract(html, j.URL)
		out := result{
			URL:     j.URL,
			Success: res.Success,
			Source:  res.Source,
			Error:   res.Error,
			Elapsed: time.Since(started).String(),
			Result:  res,
		}

		if res.Success {
			out.Title = res.Data.Title
			enriched := detector.Analyze(j.URL, html, res.Data.Title, res.Data.Instructions)
			out.Enriched = enriched
			out.Language = enriched.Language
			if res.Data.Image == "" && enriched.Image != "" {
				res.Data.Image = enriched.Image
			}
			if !enriched.English {
				logger.Warn("page does not look English; quantity parsing may miss units",
					"url", j.URL, "language", enriched.Language)
			}
		}

		results <- out
		logger.Info("worker finished job", "worker", id, "url", j.URL, "success", res.Success)
	}
}

// persist writes the artifact and database row for a successful result.
func persist(logger *slog.Logger, store *storage.Storage, database *db.DB, format string, r result) result {
	path, err := store.SaveRecipe(r.Result.Data, format)
	if err != nil {
		logger.Error("failed to save artifact", "url", r.URL, "error", err)
	} else {
		r.FilePath = path
	}

	if _, err := database.UpsertRecipe(r.Result.Data, r.Language); err != nil {
		logger.Error("failed to store recipe", "url", r.URL, "error", err)
	}
	return r
}

// tierKey maps a display tier name back to its stats key.
func tierKey(source string) string {
	switch source {
	case "JSON-LD":
		return "json_ld"
	case "Microdata":
		return "microdata"
	case "WordPress Plugin":
		return "wp_plugin"
	case "Site-Specific":
		return "site_specific"
	}
	return "failed"
}
