package database

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the starter catalog inserted into an empty database.
type Seed struct {
	Categories []SeedCategory `yaml:"categories"`
}

// SeedCategory is a seeded category and the movies that belong to it.
type SeedCategory struct {
	Name   string      `yaml:"name"`
	Movies []SeedMovie `yaml:"movies"`
}

// SeedMovie is a seeded movie. Its category comes from the enclosing SeedCategory.
type SeedMovie struct {
	Name    string `yaml:"name"`
	Year    int    `yaml:"year"`
	Minutes int    `yaml:"minutes"`
}

// LoadSeed decodes and validates the embedded starter catalog.
func LoadSeed() (*Seed, error) {
	return parseSeed(seedYAML)
}

func parseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if err := validateSeed(&seed); err != nil {
		return nil, fmt.Errorf("invalid seed data: %w", err)
	}
	return &seed, nil
}

func validateSeed(seed *Seed) error {
	if len(seed.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}

	seen := make(map[string]struct{}, len(seed.Categories))
	for i, category := range seed.Categories {
		if strings.TrimSpace(category.Name) == "" {
			return fmt.Errorf("category %d name is required", i)
		}
		if _, exists := seen[category.Name]; exists {
			return fmt.Errorf("duplicate category name: %s", category.Name)
		}
		seen[category.Name] = struct{}{}

		for j, movie := range category.Movies {
			if strings.TrimSpace(movie.Name) == "" {
				return fmt.Errorf("category %q movie %d name is required", category.Name, j)
			}
			if movie.Minutes < 0 {
				return fmt.Errorf("movie %q has negative minutes", movie.Name)
			}
		}
	}

	return nil
}

// CategoryNames returns the seeded category names in insertion order.
func (s *Seed) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for _, category := range s.Categories {
		names = append(names, category.Name)
	}
	return names
}

// MovieCount returns the number of seeded movies across all categories.
func (s *Seed) MovieCount() int {
	total := 0
	for _, category := range s.Categories {
		total += len(category.Movies)
	}
	return total
}
