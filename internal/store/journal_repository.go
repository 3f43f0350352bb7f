// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vector-console/internal/logger"
	"github.com/MKhiriev/go-vector-console/models"
)

type journalRepository struct {
	db  *DB
	now func() time.Time

	logger *logger.Logger
}

// NewJournalRepository returns the SQLite-backed [JournalRepository].
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (j *journalRepository) Record(ctx context.Context, backend string, col models.Collection, docs ...models.Document) error {
	if len(docs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)
	at := j.now()

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.Record").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	for start := 0; start < len(docs); start += journalInsertBatch {
		end := min(start+journalInsertBatch, len(docs))

		query, args, err := buildInsertDeletedDocumentsQuery(backend, col.Name, docs[start:end], at)
		if err != nil {
			log.Err(err).Str("func", "journalRepository.Record").Msg("failed to build insert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "journalRepository.Record").
				Str("collection", col.Name).
				Int("rows", end-start).
				Msg("failed to insert journal rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "journalRepository.Record").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	j.logger.Debug().
		Str("collection", col.Name).
		Int("documents", len(docs)).
		Msg("deletions journaled")
	return nil
}

func (j *journalRepository) List(ctx context.Context, collection string, limit int) ([]models.DeletedDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDeletedDocumentsQuery(collection, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.List").
			Str("collection", collection).
			Msg("failed to query journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.DeletedDocument
	for rows.Next() {
		var entry models.DeletedDocument
		if err = rows.Scan(
			&entry.JournalID,
			&entry.Backend,
			&entry.Collection,
			&entry.DocumentID,
			&entry.Text,
			&entry.Metadata,
			&entry.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (j *journalRepository) Close() error {
	return j.db.Close()
}
