package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"adapter": { "backend": "chroma", "request_timeout": "15s", "page_size": 250 },
		"chroma": { "host": "chroma.local", "port": 8000, "tenant": "acme", "database": "docs", "token": "t" },
		"qdrant": { "host": "qdrant.local", "port": 6334, "text_field": "body" },
		"storage": { "journal": { "dsn": "journal.db" } },
		"logger": { "file": "console.log", "level": "debug" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, BackendChroma, cfg.Adapter.Backend)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 250, cfg.Adapter.PageSize)
	assert.Equal(t, "chroma.local", cfg.Chroma.Host)
	assert.Equal(t, "acme", cfg.Chroma.Tenant)
	assert.Equal(t, "t", cfg.Chroma.Token)
	assert.Equal(t, "body", cfg.Qdrant.TextField)
	assert.Equal(t, "journal.db", cfg.Storage.Journal.DSN)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not valid json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: 1000},
		{name: "bad string", input: `"later"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
