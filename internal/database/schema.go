package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const schemaSQL = `
	-- Movie categories, seeded once
	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	-- Catalog entries, each bound to one category
	CREATE TABLE IF NOT EXISTS movies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		year INTEGER,
		minutes INTEGER,
		category_id INTEGER,
		FOREIGN KEY (category_id) REFERENCES categories(id)
	);
`

// Initialize creates the tables if they are missing and seeds empty tables.
// It is safe to call on every startup.
func (db *DB) Initialize() error {
	seed, err := LoadSeed()
	if err != nil {
		return err
	}
	return db.initialize(seed)
}

func (db *DB) initialize(seed *Seed) error {
	log.Debug().Str("path", db.path).Msg("Initializing database")

	if err := db.Transaction(func(tx *sqlx.Tx) error {
		for i, stmt := range splitSQLStatements(schemaSQL) {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("schema statement %d failed: %w", i+1, err)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	categories, err := db.countRows("categories")
	if err != nil {
		return err
	}
	if categories == 0 {
		if err := db.seedCategories(seed); err != nil {
			return err
		}
	}

	movies, err := db.countRows("movies")
	if err != nil {
		return err
	}
	if movies == 0 {
		if err := db.seedMovies(seed); err != nil {
			return err
		}
	}

	log.Debug().Msg("Database initialized")
	return nil
}

func (db *DB) countRows(table string) (int, error) {
	var count int
	if err := db.get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

func (db *DB) seedCategories(seed *Seed) error {
	err := db.Transaction(func(tx *sqlx.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO categories (name) VALUES (?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare category insert: %w", err)
		}
		defer stmt.Close()

		for _, category := range seed.Categories {
			if _, err := stmt.Exec(category.Name); err != nil {
				return fmt.Errorf("failed to insert category %q: %w", category.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	log.Info().Int("count", len(seed.Categories)).Msg("Seeded categories")
	return nil
}

func (db *DB) seedMovies(seed *Seed) error {
	err := db.Transaction(func(tx *sqlx.Tx) error {
		var rows []categoryRow
		if err := tx.Select(&rows, `SELECT id, name FROM categories`); err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		ids := make(map[string]int64, len(rows))
		for _, row := range rows {
			ids[row.Name] = row.ID
		}

		stmt, err := tx.Prepare(`INSERT INTO movies (name, year, minutes, category_id) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare movie insert: %w", err)
		}
		defer stmt.Close()

		for _, category := range seed.Categories {
			categoryID, ok := ids[category.Name]
			if !ok {
				return fmt.Errorf("seed category %q not found", category.Name)
			}
			for _, movie := range category.Movies {
				if _, err := stmt.Exec(movie.Name, movie.Year, movie.Minutes, categoryID); err != nil {
					return fmt.Errorf("failed to insert movie %q: %w", movie.Name, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}

	log.Info().Int("count", seed.MovieCount()).Msg("Seeded movies")
	return nil
}

// splitSQLStatements splits a SQL string into individual statements.
// It handles comments and only returns non-empty statements.
func splitSQLStatements(sql string) []string {
	var statements []string
	var current strings.Builder

	for line := range strings.SplitSeq(sql, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSpace(current.String())
			if stmt != "" && stmt != ";" {
				statements = append(statements, stmt)
			}
			current.Reset()
		}
	}

	if remaining := strings.TrimSpace(current.String()); remaining != "" {
		statements = append(statements, remaining)
	}

	return statements
}
