package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/clipdish/recipe-clipper/models"
)

// UpsertRecipe inserts or replaces the stored recipe for its source URL and
// returns the row id.
func (db *DB) UpsertRecipe(r *models.Recipe, language string) (int64, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal recipe payload: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO recipes (source_url, domain, title, extraction_method, confidence, servings, language, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			domain = excluded.domain,
			title = excluded.title,
			extraction_method = excluded.extraction_method,
			confidence = excluded.confidence,
			servings = excluded.servings,
			language = excluded.language,
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP`,
		r.SourceURL, domainOf(r.SourceURL), r.Title, r.ExtractionMethod,
		r.Confidence, r.Servings, language, string(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to upsert recipe: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get recipe id: %w", err)
	}
	return id, nil
}

// GetRecipe loads the stored recipe for a source URL, nil when absent.
func (db *DB) GetRecipe(sourceURL string) (*models.Recipe, error) {
	var payload string
	err := db.QueryRow("SELECT payload FROM recipes WHERE source_url = ?", sourceURL).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe: %w", err)
	}

	var r models.Recipe
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("failed to decode recipe payload: %w", err)
	}
	return &r, nil
}

// RecipeSummary is one row of the list view.
type RecipeSummary struct {
	ID               int64   `json:"id"`
	SourceURL        string  `json:"source_url"`
	Title            string  `json:"title"`
	ExtractionMethod string  `json:"extraction_method"`
	Confidence       float64 `json:"confidence"`
}

// ListRecipes returns stored recipes, newest first.
func (db *DB) ListRecipes(limit int) ([]RecipeSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT recipe_id, source_url, title, extraction_method, confidence
		FROM recipes ORDER BY updated_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var out []RecipeSummary
	for rows.Next() {
		var s RecipeSummary
		if err := rows.Scan(&s.ID, &s.SourceURL, &s.Title, &s.ExtractionMethod, &s.Confidence); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// RecordExtraction appends one attempt to the extraction log.
func (db *DB) RecordExtraction(sourceURL, tier string, success bool, errMsg string) error {
	_, err := db.Exec(
		"INSERT INTO extractions (source_url, tier, success, error) VALUES (?, ?, ?, ?)",
		sourceURL, tier, success, errMsg)
	if err != nil {
		return fmt.Errorf("failed to record extraction: %w", err)
	}
	return nil
}

// TierCounts aggregates the extraction log by tier.
func (db *DB) TierCounts() (map[string]int, error) {
	rows, err := db.Query("SELECT tier, COUNT(*) FROM extractions GROUP BY tier")
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate extractions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tier string
		var n int
		if err := rows.Scan(&tier, &n); err != nil {
			return nil, fmt.Errorf("failed to scan tier row: %w", err)
		}
		counts[tier] = n
	}
	return counts, rows.Err()
}

// domainOf extracts a www.-stripped hostname for indexing.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
