package storage

import (
	"path/filepath"
	"testing"

	"github.com/clipdish/recipe-clipper/models"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Chocolate Chip Cookies", "chocolate-chip-cookies"},
		{"Aunt Sue's 5-Star Pie!", "aunt-sue-s-5-star-pie"},
		{"", "recipe"},
		{"---", "recipe"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveAndLoadRecipe(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStorage(dir)
	if err != nil {
		t.Fatalf("NewStorage() error: %v", err)
	}

	ing := models.NewIngredients()
	ing = ing.Append(models.MainSection, "1 cup flour")
	original := &models.Recipe{
		Title:       "Round Trip",
		Ingredients: ing,
		Confidence:  0.99,
		SourceURL:   "https://example.com/r",
	}

	for _, format := range []string{"json", "yaml"} {
		path, err := store.SaveRecipe(original, format)
		if err != nil {
			t.Fatalf("SaveRecipe(%s) error: %v", format, err)
		}
		if filepath.Ext(path) != "."+format {
			t.Errorf("path = %q, want %s extension", path, format)
		}

		got, err := LoadRecipe(path)
		if err != nil {
			t.Fatalf("LoadRecipe(%s) error: %v", format, err)
		}
		if got.Title != original.Title || got.SourceURL != original.SourceURL {
			t.Errorf("%s round trip = %+v", format, got)
		}
		if items := got.Ingredients.Section(models.MainSection); len(items) != 1 {
			t.Errorf("%s ingredients = %v", format, items)
		}
	}
}
