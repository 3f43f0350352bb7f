package config

import (
	"fmt"
	"time"
)

// ConsoleAdapter holds the settings the transport layer needs for the
// selected backend.
type ConsoleAdapter struct {
	// Backend is "chroma" or "qdrant".
	Backend string
	// RequestTimeout is the default timeout for every remote call.
	RequestTimeout time.Duration
	// PageSize bounds records per fetch page and ids per delete batch.
	PageSize int
	// Chroma contains the Chroma endpoint; used when Backend is "chroma".
	Chroma Chroma
	// Qdrant contains the Qdrant endpoint; used when Backend is "qdrant".
	Qdrant Qdrant
}

// ConsoleStorage groups local storage settings.
type ConsoleStorage struct {
	// JournalDSN is the SQLite file for the deletion journal, or empty.
	JournalDSN string
}

// ConsoleLogger holds log output settings.
type ConsoleLogger struct {
	File  string
	Level string
}

// ConsoleConfig is the top-level console configuration assembled from
// [StructuredConfig].
type ConsoleConfig struct {
	Adapter ConsoleAdapter
	Storage ConsoleStorage
	Logger  ConsoleLogger
}

// GetConsoleConfig builds a console-specific config view from the merged
// structured configuration.
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newConsoleConfig(cfg), nil
}

func newConsoleConfig(cfg *StructuredConfig) *ConsoleConfig {
	return &ConsoleConfig{
		Adapter: ConsoleAdapter{
			Backend:        cfg.Adapter.Backend,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PageSize:       cfg.Adapter.PageSize,
			Chroma:         cfg.Chroma,
			Qdrant:         cfg.Qdrant,
		},
		Storage: ConsoleStorage{JournalDSN: cfg.Storage.Journal.DSN},
		Logger: ConsoleLogger{
			File:  cfg.Logger.File,
			Level: cfg.Logger.Level,
		},
	}
}
