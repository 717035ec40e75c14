package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/saltyorg/movielist/internal/model"
)

type categoryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (r categoryRow) toModel() model.Category {
	return model.Category{ID: r.ID, Name: r.Name}
}

// Categories returns every category ordered by id.
func (db *DB) Categories() ([]model.Category, error) {
	var rows []categoryRow
	if err := db.selectRows(&rows, `SELECT id, name FROM categories ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toModel())
	}
	return categories, nil
}

// Category retrieves a category by id. It returns nil when no category matches.
func (db *DB) Category(id int64) (*model.Category, error) {
	var row categoryRow
	err := db.get(&row, `SELECT id, name FROM categories WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}

	category := row.toModel()
	return &category, nil
}
