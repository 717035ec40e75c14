package database

import "testing"

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed()
	if err != nil {
		t.Fatalf("LoadSeed returned error: %v", err)
	}

	names := seed.CategoryNames()
	expected := []string{"Anime", "DC Movies", "Marvel movies"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d categories, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Fatalf("expected category %d to be %q, got %q", i, expected[i], names[i])
		}
	}
	for _, category := range seed.Categories {
		if len(category.Movies) != 10 {
			t.Fatalf("expected 10 movies in %q, got %d", category.Name, len(category.Movies))
		}
	}
	if seed.MovieCount() != 30 {
		t.Fatalf("expected 30 movies, got %d", seed.MovieCount())
	}
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid yaml", data: "categories: [\n"},
		{name: "no categories", data: "categories: []\n"},
		{name: "missing category name", data: "categories:\n  - movies: []\n"},
		{name: "duplicate category", data: "categories:\n  - name: Anime\n  - name: Anime\n"},
		{name: "missing movie name", data: "categories:\n  - name: Anime\n    movies:\n      - { year: 2001, minutes: 125 }\n"},
		{name: "negative minutes", data: "categories:\n  - name: Anime\n    movies:\n      - { name: Akira, year: 1988, minutes: -1 }\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseSeed([]byte(tt.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
