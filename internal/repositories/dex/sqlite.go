package dex

import (
	"database/sql"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/Leo-Expose/PokeBase/internal/errors"
)

// NewSQLite opens a SQLite copy of the reference dataset at path and returns
// a repository over it. The handle is read-only in practice; nothing in this
// package writes.
func NewSQLite(path string) (*SQLRepository, error) {
	if path == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	return newSQLRepository(&SQLConfig{DB: db}, dialectSQLite)
}

// NewSQLiteFromDB wraps an already-open handle, used by tests that seed an
// in-memory database.
func NewSQLiteFromDB(db *sql.DB) (*SQLRepository, error) {
	return newSQLRepository(&SQLConfig{DB: db}, dialectSQLite)
}
