package db

import "database/sql"

// NewNullString returns a NULL for empty strings.
func NewNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NewNullInt64 returns a NULL for zero.
func NewNullInt64(n int64) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: n != 0}
}
