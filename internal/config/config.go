// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported values of [Adapter.Backend].
const (
	BackendChroma = "chroma"
	BackendQdrant = "qdrant"
)

// StructuredConfig is the top-level configuration container for the console.
// It aggregates all sub-configurations and is populated by merging values
// from defaults, an optional JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter selects the remote backend and holds transport settings shared
	// by every backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Chroma holds the network location of a Chroma server.
	Chroma Chroma `envPrefix:"CHROMA_"`

	// Qdrant holds the network location of a Qdrant server.
	Qdrant Qdrant `envPrefix:"QDRANT_"`

	// Storage holds local persistence settings (deletion journal).
	Storage Storage `envPrefix:"STORAGE_"`

	// Logger holds log output settings.
	Logger Logger `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds backend selection and transport settings.
type Adapter struct {
	// Backend names the remote vector database: "chroma" or "qdrant".
	// Env: ADAPTER_BACKEND
	Backend string `env:"BACKEND"`

	// RequestTimeout bounds every single remote call (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageSize is the number of records fetched per page and deleted per
	// batch.
	// Env: ADAPTER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Chroma holds connection settings for the Chroma HTTP API.
type Chroma struct {
	// Env: CHROMA_HOST
	Host string `env:"HOST"`
	// Env: CHROMA_PORT
	Port int `env:"PORT"`
	// SSL switches the scheme to https. Layers are merged with override and
	// false is the zero value, so a higher layer can switch it on but not
	// back off once a lower layer (e.g. the JSON file) set it.
	// Env: CHROMA_SSL
	SSL bool `env:"SSL"`
	// Env: CHROMA_TENANT
	Tenant string `env:"TENANT"`
	// Env: CHROMA_DATABASE
	Database string `env:"DATABASE"`
	// Token is sent as a bearer token when non-empty.
	// Env: CHROMA_TOKEN
	Token string `env:"TOKEN"`
}

// Qdrant holds connection settings for the Qdrant gRPC API.
type Qdrant struct {
	// Env: QDRANT_HOST
	Host string `env:"HOST"`
	// Env: QDRANT_PORT
	Port int `env:"PORT"`
	// Env: QDRANT_API_KEY
	APIKey string `env:"API_KEY"`
	// TLS has the same merge limit as [Chroma.SSL].
	// Env: QDRANT_TLS
	TLS bool `env:"TLS"`
	// TextField is the payload key holding the document body.
	// Env: QDRANT_TEXT_FIELD
	TextField string `env:"TEXT_FIELD"`
}

// Storage groups local persistence settings.
type Storage struct {
	Journal Journal `envPrefix:"JOURNAL_"`
}

// Journal configures the local deletion journal.
type Journal struct {
	// DSN is the SQLite file path. Empty disables the journal.
	// Env: STORAGE_JOURNAL_DSN
	DSN string `env:"DSN"`
}

// Logger configures log output. The terminal is owned by the TUI, so logs
// always go to a file.
type Logger struct {
	// Env: LOG_FILE
	File string `env:"FILE"`
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Backend:        BackendChroma,
			RequestTimeout: 30 * time.Second,
			PageSize:       500,
		},
		Chroma: Chroma{
			Host:     "localhost",
			Port:     8000,
			Tenant:   "default_tenant",
			Database: "default_database",
		},
		Qdrant: Qdrant{
			Host:      "localhost",
			Port:      6334,
			TextField: "document",
		},
		Logger: Logger{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Command-line arguments are taken from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
