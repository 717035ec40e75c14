package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/saltyorg/movielist/internal/model"
)

// ErrMissingCategory is returned when a movie is added without a category.
var ErrMissingCategory = errors.New("movie has no category")

// movieRow is a movie joined to its category.
type movieRow struct {
	ID           int64         `db:"id"`
	Name         string        `db:"name"`
	Year         sql.NullInt64 `db:"year"`
	Minutes      sql.NullInt64 `db:"minutes"`
	CategoryID   int64         `db:"category_id"`
	CategoryName string        `db:"category_name"`
}

func (r movieRow) toModel() model.Movie {
	return model.Movie{
		ID:      r.ID,
		Name:    r.Name,
		Year:    nullIntValue(r.Year),
		Minutes: nullIntValue(r.Minutes),
		Category: &model.Category{
			ID:   r.CategoryID,
			Name: r.CategoryName,
		},
	}
}

const movieSelect = `
	SELECT m.id AS id, m.name AS name, m.year AS year, m.minutes AS minutes,
		c.id AS category_id, c.name AS category_name
	FROM movies m
	JOIN categories c ON m.category_id = c.id
`

func (db *DB) listMovies(where string, args ...any) ([]model.Movie, error) {
	query := movieSelect
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY m.id"

	var rows []movieRow
	if err := db.selectRows(&rows, query, args...); err != nil {
		return nil, err
	}

	movies := make([]model.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, row.toModel())
	}
	return movies, nil
}

// Movies returns every movie with its category, ordered by id.
func (db *DB) Movies() ([]model.Movie, error) {
	movies, err := db.listMovies("")
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

// MoviesByCategory returns the movies in a category, ordered by id.
// An unknown category id yields an empty list.
func (db *DB) MoviesByCategory(categoryID int64) ([]model.Movie, error) {
	movies, err := db.listMovies("c.id = ?", categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies for category %d: %w", categoryID, err)
	}
	return movies, nil
}

// MoviesByYear returns the movies released in year, ordered by id.
func (db *DB) MoviesByYear(year int) ([]model.Movie, error) {
	movies, err := db.listMovies("m.year = ?", year)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies for year %d: %w", year, err)
	}
	return movies, nil
}

// AddMovie inserts a movie and returns its assigned id. The movie's own ID is ignored.
// The category id is not checked here; with foreign keys enabled SQLite rejects unknown ids.
func (db *DB) AddMovie(movie model.Movie) (int64, error) {
	if movie.Category == nil {
		return 0, ErrMissingCategory
	}

	result, err := db.exec(`
		INSERT INTO movies (name, year, minutes, category_id)
		VALUES (?, ?, ?, ?)
	`, movie.Name, movie.Year, movie.Minutes, movie.Category.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to add movie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get movie id: %w", err)
	}
	return id, nil
}

// DeleteMovie removes the movie with id and returns the number of rows deleted.
// Deleting an id that does not exist is not an error.
func (db *DB) DeleteMovie(id int64) (int64, error) {
	result, err := db.exec(`DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete movie %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get deleted rows: %w", err)
	}
	return affected, nil
}
