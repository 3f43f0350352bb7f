package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-vector-console/internal/logger"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies every pending journal migration to db. Goose output goes
// to log; with a nil log it is discarded.
func Migrate(db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	if log != nil {
		goose.SetLogger(gooseLogger{log: log})
	} else {
		goose.SetLogger(goose.NopLogger())
	}
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
