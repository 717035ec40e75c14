package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// DefaultPath is the database file used when no path is configured.
const DefaultPath = "movies.db"

const driverName = "sqlite"

// ErrConnection is wrapped by every failure to open the database.
var ErrConnection = errors.New("database connection failed")

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// Options controls how the database connection is opened.
type Options struct {
	// ForeignKeys enables SQLite foreign key enforcement on the connection.
	ForeignKeys bool
}

// DefaultOptions returns the options used by the CLI when nothing is configured.
// Foreign keys stay off, as in a plain SQLite connection, so a movie may
// reference a category id that does not exist.
func DefaultOptions() Options {
	return Options{ForeignKeys: false}
}

// DB wraps the SQLite database connection
type DB struct {
	conn *sqlx.DB
	path string
	mu   sync.Mutex
}

// New opens the database at path, creating the file if it does not exist.
func New(path string, opts Options) (*DB, error) {
	if path == "" {
		path = DefaultPath
	}

	conn, err := sqlx.Open(driverName, dsn(path, opts))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrConnection, err)
	}

	// Test connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %w", ErrConnection, err)
	}

	// A single connection keeps per-connection pragmas in effect for every query
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	log.Debug().Str("path", path).Bool("foreign_keys", opts.ForeignKeys).Msg("Database connection established")

	return &DB{
		conn: conn,
		path: path,
	}, nil
}

// uriPathEscaper escapes the characters SQLite treats specially in a file: URI path.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// dsn builds a file: URI so that a path containing '?' is not split into query parameters.
func dsn(path string, opts Options) string {
	foreignKeys := 0
	if opts.ForeignKeys {
		foreignKeys = 1
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(%d)",
		uriPathEscaper.Replace(path), foreignKeys)
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// Close releases the connection. Failures are logged and returned.
func (db *DB) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}
	if err := db.conn.Close(); err != nil {
		log.Error().Err(err).Str("path", db.path).Msg("Failed to close database")
		return fmt.Errorf("failed to close database: %w", err)
	}
	log.Debug().Str("path", db.path).Msg("Database connection closed")
	return nil
}

// ForeignKeysEnabled reports whether SQLite is enforcing foreign keys on the connection.
func (db *DB) ForeignKeysEnabled() (bool, error) {
	var enabled int
	if err := db.get(&enabled, "PRAGMA foreign_keys"); err != nil {
		return false, fmt.Errorf("failed to read foreign_keys pragma: %w", err)
	}
	return enabled == 1, nil
}

// Transaction wraps a function in a database transaction
func (db *DB) Transaction(fn func(*sqlx.Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
