package db

import (
	"testing"

	"github.com/clipdish/recipe-clipper/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func testRecipe(url string) *models.Recipe {
	ing := models.NewIngredients()
	ing = ing.Append(models.MainSection, "1 cup flour")
	return &models.Recipe{
		Title:            "Test Recipe",
		Ingredients:      ing,
		Instructions:     []string{"Mix it well and bake."},
		Servings:         "4",
		ExtractionMethod: "JSON-LD",
		Confidence:       0.99,
		SourceURL:        url,
	}
}

func TestUpsertAndGetRecipe(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	url := "https://www.example.com/recipes/1"
	if _, err := db.UpsertRecipe(testRecipe(url), "en"); err != nil {
		t.Fatalf("UpsertRecipe() error: %v", err)
	}

	got, err := db.GetRecipe(url)
	if err != nil {
		t.Fatalf("GetRecipe() error: %v", err)
	}
	if got == nil {
		t.Fatal("GetRecipe() returned nil for stored recipe")
	}
	if got.Title != "Test Recipe" || got.Confidence != 0.99 {
		t.Errorf("round-tripped recipe = %+v", got)
	}
	if items := got.Ingredients.Section(models.MainSection); len(items) != 1 || items[0] != "1 cup flour" {
		t.Errorf("ingredients = %v", items)
	}
}

func TestUpsertRecipeReplacesExisting(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	url := "https://example.com/r"
	if _, err := db.UpsertRecipe(testRecipe(url), "en"); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	updated := testRecipe(url)
	updated.Title = "Updated Title"
	if _, err := db.UpsertRecipe(updated, "en"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := db.GetRecipe(url)
	if err != nil {
		t.Fatalf("GetRecipe() error: %v", err)
	}
	if got.Title != "Updated Title" {
		t.Errorf("Title = %q, want Updated Title", got.Title)
	}

	summaries, err := db.ListRecipes(10)
	if err != nil {
		t.Fatalf("ListRecipes() error: %v", err)
	}
	if len(summaries) != 1 {
		t.Errorf("expected one row after upsert, got %d", len(summaries))
	}
}

func TestGetRecipeMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	got, err := db.GetRecipe("https://example.com/nope")
	if err != nil {
		t.Fatalf("GetRecipe() error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing recipe, got %+v", got)
	}
}

func TestRecordExtractionAndTierCounts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	attempts := []struct {
		tier    string
		success bool
	}{
		{"json_ld", true},
		{"json_ld", true},
		{"microdata", true},
		{"failed", false},
	}
	for _, a := range attempts {
		errMsg := ""
		if !a.success {
			errMsg = "Unable to extract recipe from this URL"
		}
		if err := db.RecordExtraction("https://example.com", a.tier, a.success, errMsg); err != nil {
			t.Fatalf("RecordExtraction() error: %v", err)
		}
	}

	counts, err := db.TierCounts()
	if err != nil {
		t.Fatalf("TierCounts() error: %v", err)
	}
	if counts["json_ld"] != 2 || counts["microdata"] != 1 || counts["failed"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
