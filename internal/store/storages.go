package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vector-console/internal/config"
	"github.com/MKhiriev/go-vector-console/internal/logger"
)

// ConsoleStorages groups the local repositories used by the console.
type ConsoleStorages struct {
	// Journal records deleted documents. It is a no-op journal when no DSN
	// is configured.
	Journal JournalRepository
}

// NewConsoleStorages initialises local storage:
//  1. With an empty cfg.JournalDSN a no-op journal is returned.
//  2. Otherwise the SQLite file is opened (and created) and migrated.
func NewConsoleStorages(ctx context.Context, cfg config.ConsoleStorage, logger *logger.Logger) (*ConsoleStorages, error) {
	if cfg.JournalDSN == "" {
		logger.Info().Msg("deletion journal disabled")
		return &ConsoleStorages{Journal: NewNopJournal()}, nil
	}

	logger.Info().Str("dsn", cfg.JournalDSN).Msg("opening deletion journal...")

	db, err := NewConnectSQLite(ctx, cfg.JournalDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ConsoleStorages{Journal: NewJournalRepository(db, logger)}, nil
}

// Close releases every repository.
func (s *ConsoleStorages) Close() error {
	if s == nil || s.Journal == nil {
		return nil
	}
	return s.Journal.Close()
}
