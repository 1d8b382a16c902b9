package dex

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver over pgx

	"github.com/Leo-Expose/PokeBase/internal/errors"
)

// NewPostgres opens a PostgreSQL copy of the reference dataset and returns a
// repository over it. Query text is shared with the SQLite repository and
// rebound to $n placeholders.
func NewPostgres(dsn string) (*SQLRepository, error) {
	if dsn == "" {
		return nil, errors.InvalidArgument("postgres dsn is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres database")
	}

	return newSQLRepository(&SQLConfig{DB: db}, dialectPostgres)
}
