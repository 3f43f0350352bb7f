package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "qdrant backend", mutate: func(cfg *StructuredConfig) { cfg.Adapter.Backend = BackendQdrant }},
		{name: "unknown backend", mutate: func(cfg *StructuredConfig) { cfg.Adapter.Backend = "milvus" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty chroma host", mutate: func(cfg *StructuredConfig) { cfg.Chroma.Host = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "qdrant port out of range", mutate: func(cfg *StructuredConfig) {
			cfg.Adapter.Backend = BackendQdrant
			cfg.Qdrant.Port = 0
		}, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero page size", mutate: func(cfg *StructuredConfig) { cfg.Adapter.PageSize = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "bad log level", mutate: func(cfg *StructuredConfig) { cfg.Logger.Level = "loud" }, wantErr: ErrInvalidLoggerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewConsoleConfig_MapsFields(t *testing.T) {
	cfg := defaultConfig()
	cfg.Storage.Journal.DSN = "journal.db"
	cfg.Logger.File = "console.log"

	view := newConsoleConfig(cfg)

	assert.Equal(t, BackendChroma, view.Adapter.Backend)
	assert.Equal(t, cfg.Adapter.RequestTimeout, view.Adapter.RequestTimeout)
	assert.Equal(t, cfg.Chroma, view.Adapter.Chroma)
	assert.Equal(t, cfg.Qdrant, view.Adapter.Qdrant)
	assert.Equal(t, "journal.db", view.Storage.JournalDSN)
	assert.Equal(t, "console.log", view.Logger.File)
	assert.Equal(t, "info", view.Logger.Level)
}
