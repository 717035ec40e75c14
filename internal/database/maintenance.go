package database

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var errNotOpen = errors.New("database not open")

// Optimize refreshes planner statistics for the movie and category lookups.
func (db *DB) Optimize() error {
	if db == nil || db.conn == nil {
		return errNotOpen
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.exec("PRAGMA optimize"); err != nil {
		return fmt.Errorf("failed to optimize database: %w", err)
	}

	log.Debug().Str("path", db.path).Msg("Database optimized")
	return nil
}

// Vacuum rebuilds the database file to drop pages left behind by deleted
// movies, and returns the number of bytes reclaimed.
func (db *DB) Vacuum() (int64, error) {
	if db == nil || db.conn == nil {
		return 0, errNotOpen
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	before, err := db.sizeBytes()
	if err != nil {
		return 0, err
	}

	if _, err := db.exec("VACUUM"); err != nil {
		return 0, fmt.Errorf("failed to vacuum database: %w", err)
	}

	// Fold the rebuilt pages back into the main file so it shrinks on disk
	if _, err := db.exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return 0, fmt.Errorf("failed to checkpoint database: %w", err)
	}

	after, err := db.sizeBytes()
	if err != nil {
		return 0, err
	}

	reclaimed := max(before-after, 0)
	log.Info().
		Str("path", db.path).
		Int64("size_before", before).
		Int64("size_after", after).
		Int64("reclaimed", reclaimed).
		Msg("Database vacuumed")
	return reclaimed, nil
}

// sizeBytes reports the logical database size from its page count.
func (db *DB) sizeBytes() (int64, error) {
	var pageCount, pageSize int64
	if err := db.get(&pageCount, "PRAGMA page_count"); err != nil {
		return 0, fmt.Errorf("failed to read page_count: %w", err)
	}
	if err := db.get(&pageSize, "PRAGMA page_size"); err != nil {
		return 0, fmt.Errorf("failed to read page_size: %w", err)
	}
	return pageCount * pageSize, nil
}
