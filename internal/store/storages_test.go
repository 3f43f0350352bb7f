package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-vector-console/internal/config"
	"github.com/MKhiriev/go-vector-console/internal/logger"
	"github.com/MKhiriev/go-vector-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsoleStorages_EmptyDSNUsesNopJournal(t *testing.T) {
	s, err := NewConsoleStorages(context.Background(), config.ConsoleStorage{}, logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, nopJournal{}, s.Journal)
	assert.NoError(t, s.Close())
}

func TestConsoleStorages_CloseNil(t *testing.T) {
	var s *ConsoleStorages
	assert.NoError(t, s.Close())
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// повторный вызов не трогает существующий файл
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, createLocalDBFileIfNotExists(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestNewConsoleStorages_SQLiteJournalRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "data", "journal.db")

	s, err := NewConsoleStorages(ctx, config.ConsoleStorage{JournalDSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	repo, ok := s.Journal.(*journalRepository)
	require.True(t, ok)

	col := models.Collection{ID: "c-1", Name: "docs"}
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	repo.now = func() time.Time { return first }
	require.NoError(t, repo.Record(ctx, "chroma", col,
		models.Document{ID: "a", Text: "alpha", Metadata: map[string]any{"page": 1}},
	))
	repo.now = func() time.Time { return second }
	require.NoError(t, repo.Record(ctx, "chroma", col, models.Document{ID: "b"}))
	require.NoError(t, repo.Record(ctx, "chroma", models.Collection{ID: "c-2", Name: "other"}, models.Document{ID: "x"}))

	entries, err := s.Journal.List(ctx, "docs", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// новые записи идут первыми
	assert.Equal(t, "b", entries[0].DocumentID)
	assert.Empty(t, entries[0].Text)
	assert.Nil(t, entries[0].Metadata)
	assert.True(t, second.Equal(entries[0].DeletedAt), entries[0].DeletedAt)

	assert.Equal(t, "a", entries[1].DocumentID)
	assert.Equal(t, "alpha", entries[1].Text)
	assert.Equal(t, "chroma", entries[1].Backend)
	assert.Equal(t, "docs", entries[1].Collection)
	assert.JSONEq(t, `{"page":1}`, string(entries[1].Metadata))
	assert.True(t, first.Equal(entries[1].DeletedAt), entries[1].DeletedAt)

	limited, err := s.Journal.List(ctx, "docs", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
