package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vector-console/models"
)

const journalTable = "deleted_documents"

// journalInsertBatch bounds rows per INSERT so that the statement stays below
// the SQLite host parameter limit.
const journalInsertBatch = 200

var journalColumns = []string{
	"id",
	"backend",
	"collection",
	"document_id",
	"document",
	"metadata",
	"deleted_at",
}

func buildInsertDeletedDocumentsQuery(backend, collection string, docs []models.Document, at time.Time) (string, []any, error) {
	builder := sq.Insert(journalTable).
		Columns("backend", "collection", "document_id", "document", "metadata", "deleted_at").
		PlaceholderFormat(sq.Question)

	for _, doc := range docs {
		metadata, err := encodeMetadata(doc.Metadata)
		if err != nil {
			return "", nil, fmt.Errorf("%w (document_id=%s): %w", ErrEncodingMetadata, doc.ID, err)
		}
		builder = builder.Values(backend, collection, doc.ID, doc.Text, metadata, at)
	}

	return builder.ToSql()
}

func buildListDeletedDocumentsQuery(collection string, limit int) (string, []any, error) {
	builder := sq.Select(journalColumns...).
		From(journalTable).
		Where(sq.Eq{"collection": collection}).
		OrderBy("deleted_at DESC", "id DESC").
		PlaceholderFormat(sq.Question)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

// encodeMetadata returns nil for empty metadata so the column stays NULL.
func encodeMetadata(metadata map[string]any) (any, error) {
	if len(metadata) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
