// Package storage persists extracted recipe records as JSON or YAML
// artifacts under an output directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/clipdish/recipe-clipper/models"
)

type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a filesystem-safe name from a recipe title.
func Slug(title string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "recipe"
	}
	return slug
}

// SaveRecipe writes a recipe artifact in the requested format and returns
// the path written.
func (s *Storage) SaveRecipe(r *models.Recipe, format string) (string, error) {
	var data []byte
	var err error

	switch format {
	case "yaml":
		data, err = yaml.Marshal(r)
	default:
		format = "json"
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal recipe: %w", err)
	}

	path := filepath.Join(s.dir, Slug(r.Title)+"."+format)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return path, nil
}

// LoadRecipe reads an artifact back, detecting the format from the
// extension.
func LoadRecipe(path string) (*models.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	var r models.Recipe
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		err = yaml.Unmarshal(data, &r)
	} else {
		err = json.Unmarshal(data, &r)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipe file: %w", err)
	}
	return &r, nil
}

// HasFile reports whether a path already exists.
func (s *Storage) HasFile(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}
