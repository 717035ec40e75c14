package database

import "database/sql"

// nullIntValue converts a sql.NullInt64 to an int (zero if not valid)
func nullIntValue(n sql.NullInt64) int {
	if n.Valid {
		return int(n.Int64)
	}
	return 0
}
