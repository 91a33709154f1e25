package database

import (
	"database/sql"
	_ "embed"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

//go:embed schema.sql
var schema string

// InitDB initializes and returns a database connection with the schema
// applied. Use ":memory:" in tests.
func InitDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "pinging database")
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "applying schema")
	}

	return db, nil
}
