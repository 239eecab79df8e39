// Package stats implements the stats CLI command: the historical per-tier
// extraction distribution from the database.
package stats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/clipdish/recipe-clipper/pkg/db"
)

type report struct {
	Counts  map[string]int     `json:"counts"`
	Total   int                `json:"total"`
	Percent map[string]float64 `json:"percent"`
}

func Action(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	database, err := db.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	counts, err := database.TierCounts()
	if err != nil {
		logger.Error("failed to aggregate extractions", "error", err)
		os.Exit(2)
	}

	out := report{Counts: counts, Percent: make(map[string]float64)}
	for _, n := range counts {
		out.Total += n
	}
	for tier, n := range counts {
		if out.Total > 0 {
			out.Percent[tier] = float64(n) / float64(out.Total) * 100
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
