// Package catalog exposes best-effort movie catalog operations for the
// interactive front-end. Store failures are logged and never returned:
// reads degrade to empty results and writes leave the store unchanged.
package catalog

import (
	"github.com/rs/zerolog/log"

	"github.com/saltyorg/movielist/internal/model"
)

// Store is the strict persistence API the catalog is built on.
type Store interface {
	Categories() ([]model.Category, error)
	Category(id int64) (*model.Category, error)
	Movies() ([]model.Movie, error)
	MoviesByCategory(categoryID int64) ([]model.Movie, error)
	MoviesByYear(year int) ([]model.Movie, error)
	AddMovie(movie model.Movie) (int64, error)
	DeleteMovie(id int64) (int64, error)
}

// Catalog wraps a Store with log-and-continue error handling.
type Catalog struct {
	store Store
}

// New creates a catalog backed by store.
func New(store Store) *Catalog {
	return &Catalog{store: store}
}

// ListCategories returns all categories, or an empty list if the store fails.
func (c *Catalog) ListCategories() []model.Category {
	categories, err := c.store.Categories()
	if err != nil {
		log.Error().Err(err).Msg("Error getting categories")
		return []model.Category{}
	}
	return categories
}

// GetCategory returns the category with id, or nil if it is absent or the store fails.
func (c *Catalog) GetCategory(id int64) *model.Category {
	category, err := c.store.Category(id)
	if err != nil {
		log.Error().Err(err).Int64("category_id", id).Msg("Error getting category")
		return nil
	}
	return category
}

// ListAllMovies returns every movie ordered by id.
func (c *Catalog) ListAllMovies() []model.Movie {
	movies, err := c.store.Movies()
	if err != nil {
		log.Error().Err(err).Msg("Error getting all movies")
		return []model.Movie{}
	}
	return movies
}

// ListMoviesByCategory returns the movies in a category ordered by id.
func (c *Catalog) ListMoviesByCategory(categoryID int64) []model.Movie {
	movies, err := c.store.MoviesByCategory(categoryID)
	if err != nil {
		log.Error().Err(err).Int64("category_id", categoryID).Msg("Error getting movies by category")
		return []model.Movie{}
	}
	return movies
}

// ListMoviesByYear returns the movies released in year ordered by id.
func (c *Catalog) ListMoviesByYear(year int) []model.Movie {
	movies, err := c.store.MoviesByYear(year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("Error getting movies by year")
		return []model.Movie{}
	}
	return movies
}

// AddMovie inserts movie. A failure is logged only.
func (c *Catalog) AddMovie(movie model.Movie) {
	id, err := c.store.AddMovie(movie)
	if err != nil {
		log.Error().Err(err).Str("name", movie.Name).Msg("Error adding movie")
		return
	}
	log.Debug().Int64("movie_id", id).Str("name", movie.Name).Msg("Movie added")
}

// DeleteMovie removes the movie with id if it exists. A failure is logged only.
func (c *Catalog) DeleteMovie(id int64) {
	affected, err := c.store.DeleteMovie(id)
	if err != nil {
		log.Error().Err(err).Int64("movie_id", id).Msg("Error deleting movie")
		return
	}
	log.Debug().Int64("movie_id", id).Int64("deleted", affected).Msg("Movie delete processed")
}
