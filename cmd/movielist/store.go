package main

import (
	"github.com/rs/zerolog/log"

	"github.com/saltyorg/movielist/internal/database"
)

// openStore opens and initializes the configured database. Both steps are fatal on failure.
func openStore() (*database.DB, error) {
	db, err := database.New(cfg.Database.Path, database.Options{ForeignKeys: cfg.Database.ForeignKeys})
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Database.Path).Msg("Failed to open database")
		return nil, err
	}

	if err := db.Initialize(); err != nil {
		log.Error().Err(err).Msg("Failed to initialize database")
		closeStore(db)
		return nil, err
	}

	return db, nil
}

// closeStore releases the database. Close already logs its failure, so it is ignored here.
func closeStore(db *database.DB) {
	_ = db.Close()
}
