package database

import (
	"path/filepath"
	"testing"
)

func TestInitialize_SeedsCategoriesInOrder(t *testing.T) {
	db := openTestDB(t)

	categories, err := db.Categories()
	if err != nil {
		t.Fatalf("Categories returned error: %v", err)
	}

	expected := []string{"Anime", "DC Movies", "Marvel movies"}
	if len(categories) != len(expected) {
		t.Fatalf("expected %d categories, got %d", len(expected), len(categories))
	}
	for i, name := range expected {
		if categories[i].Name != name {
			t.Fatalf("expected category %d to be %q, got %q", i, name, categories[i].Name)
		}
		if categories[i].ID != int64(i+1) {
			t.Fatalf("expected category %q to have id %d, got %d", name, i+1, categories[i].ID)
		}
	}
}

func TestInitialize_SeedsMoviesPerCategory(t *testing.T) {
	db := openTestDB(t)

	seed, err := LoadSeed()
	if err != nil {
		t.Fatalf("LoadSeed returned error: %v", err)
	}

	movies, err := db.Movies()
	if err != nil {
		t.Fatalf("Movies returned error: %v", err)
	}
	if len(movies) != 30 {
		t.Fatalf("expected 30 movies, got %d", len(movies))
	}

	expectedCategory := make(map[string]string)
	for _, category := range seed.Categories {
		for _, movie := range category.Movies {
			expectedCategory[movie.Name] = category.Name
		}
	}

	perCategory := make(map[string]int)
	for _, movie := range movies {
		if movie.Category == nil {
			t.Fatalf("movie %q has no category", movie.Name)
		}
		if movie.Category.Name != expectedCategory[movie.Name] {
			t.Fatalf("expected %q in %q, got %q", movie.Name, expectedCategory[movie.Name], movie.Category.Name)
		}
		perCategory[movie.Category.Name]++
	}
	for _, name := range seed.CategoryNames() {
		if perCategory[name] != 10 {
			t.Fatalf("expected 10 movies in %q, got %d", name, perCategory[name])
		}
	}

	first := movies[0]
	if first.Name != "Spirited Away" || first.Year != 2001 || first.Minutes != 125 {
		t.Fatalf("unexpected first movie: %+v", first)
	}
	last := movies[len(movies)-1]
	if last.Name != "Spider-Man: Homecoming" || last.Year != 2017 || last.Minutes != 133 {
		t.Fatalf("unexpected last movie: %+v", last)
	}
}

func TestInitialize_Idempotent(t *testing.T) {
	db := openTestDB(t)

	before, err := db.Movies()
	if err != nil {
		t.Fatalf("Movies returned error: %v", err)
	}

	if err := db.Initialize(); err != nil {
		t.Fatalf("second Initialize returned error: %v", err)
	}

	categories, err := db.countRows("categories")
	if err != nil {
		t.Fatalf("countRows returned error: %v", err)
	}
	if categories != 3 {
		t.Fatalf("expected 3 categories after re-initialize, got %d", categories)
	}

	after, err := db.Movies()
	if err != nil {
		t.Fatalf("Movies returned error: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("expected %d movies after re-initialize, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i].String() != after[i].String() {
			t.Fatalf("movie %d changed: %q -> %q", i, before[i], after[i])
		}
	}
}

func TestInitialize_ReopenedDatabaseIsNotReseeded(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := New(dbPath, DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := db.Initialize(); err != nil {
		t.Fatalf("failed to initialize: %v", err)
	}
	if _, err := db.DeleteMovie(1); err != nil {
		t.Fatalf("DeleteMovie returned error: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	db, err = New(dbPath, DefaultOptions())
	if err != nil {
		t.Fatalf("failed to reopen db: %v", err)
	}
	defer db.Close()
	if err := db.Initialize(); err != nil {
		t.Fatalf("failed to re-initialize: %v", err)
	}

	movies, err := db.Movies()
	if err != nil {
		t.Fatalf("Movies returned error: %v", err)
	}
	if len(movies) != 29 {
		t.Fatalf("expected 29 movies, got %d", len(movies))
	}
}

func TestInitialize_ReseedsMoviesWhenEmptied(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.exec(`DELETE FROM movies`); err != nil {
		t.Fatalf("failed to clear movies: %v", err)
	}
	if err := db.Initialize(); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	movies, err := db.Movies()
	if err != nil {
		t.Fatalf("Movies returned error: %v", err)
	}
	if len(movies) != 30 {
		t.Fatalf("expected 30 movies after reseed, got %d", len(movies))
	}
	// AUTOINCREMENT never reuses ids
	if movies[0].ID != 31 {
		t.Fatalf("expected first reseeded id 31, got %d", movies[0].ID)
	}
}

func TestInitialize_MissingSeedCategoryFails(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "test.db"), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	seed := &Seed{Categories: []SeedCategory{{Name: "Anime"}}}
	if err := db.initialize(seed); err != nil {
		t.Fatalf("initialize returned error: %v", err)
	}

	other := &Seed{Categories: []SeedCategory{{
		Name:   "Westerns",
		Movies: []SeedMovie{{Name: "Unforgiven", Year: 1992, Minutes: 130}},
	}}}
	if err := db.initialize(other); err == nil {
		t.Fatal("expected error seeding movies for unknown category")
	}

	count, err := db.countRows("movies")
	if err != nil {
		t.Fatalf("countRows returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected failed seed to insert nothing, got %d movies", count)
	}
}

func TestSplitSQLStatements(t *testing.T) {
	statements := splitSQLStatements(schemaSQL)
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(statements), statements)
	}

	statements = splitSQLStatements("-- comment only\n\nSELECT 1;\nSELECT 2")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(statements), statements)
	}
	if statements[0] != "SELECT 1;" || statements[1] != "SELECT 2" {
		t.Fatalf("unexpected statements: %q", statements)
	}
}
