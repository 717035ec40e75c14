package database

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
)

func (db *DB) exec(query string, args ...any) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

// selectRows decodes every result row into dest by column name.
func (db *DB) selectRows(dest any, query string, args ...any) error {
	return db.conn.Select(dest, query, args...)
}

// get decodes a single result row into dest, returning sql.ErrNoRows when empty.
func (db *DB) get(dest any, query string, args ...any) error {
	return db.conn.Get(dest, query, args...)
}

func (db *DB) begin() (*sqlx.Tx, error) {
	return db.conn.Beginx()
}
