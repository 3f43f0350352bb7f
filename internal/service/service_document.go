// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/adapter"
	"github.com/MKhiriev/go-vector-console/internal/logger"
	"github.com/MKhiriev/go-vector-console/internal/store"
	"github.com/MKhiriev/go-vector-console/models"
)

type documentService struct {
	adapter adapter.VectorStoreAdapter
	journal store.JournalRepository
	backend string
}

func NewDocumentService(vectorStore adapter.VectorStoreAdapter, journal store.JournalRepository, backend string) DocumentService {
	return &documentService{adapter: vectorStore, journal: journal, backend: backend}
}

func (d *documentService) GetAll(ctx context.Context, col models.Collection) ([]models.Document, error) {
	docs, err := d.adapter.GetDocuments(ctx, col)
	if err != nil {
		return nil, fmt.Errorf("get documents: %w", mapCollectionError(err, col.Name))
	}
	return docs, nil
}

func (d *documentService) IDs(ctx context.Context, col models.Collection) ([]string, error) {
	docs, err := d.GetAll(ctx, col)
	if err != nil {
		return nil, err
	}
	return models.DocumentIDs(docs), nil
}

// Delete checks the id exists first: the backends accept deletes of unknown
// ids silently.
func (d *documentService) Delete(ctx context.Context, col models.Collection, id string) error {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyDocumentID
	}

	docs, err := d.adapter.GetDocuments(ctx, col, id)
	if err != nil {
		return fmt.Errorf("look up document: %w", mapCollectionError(err, col.Name))
	}
	if len(docs) == 0 {
		return fmt.Errorf("%w: %q", ErrDocumentNotFound, id)
	}

	if err = d.journal.Record(ctx, d.backend, col, docs...); err != nil {
		return fmt.Errorf("journal deletion: %w", err)
	}

	if err = d.adapter.Delete(ctx, col, []string{id}); err != nil {
		return fmt.Errorf("delete document: %w", mapCollectionError(err, col.Name))
	}

	log.Info().
		Str("collection", col.Name).
		Str("document_id", id).
		Msg("document deleted")
	return nil
}

func (d *documentService) DeleteAll(ctx context.Context, col models.Collection) (int, error) {
	log := logger.FromContext(ctx)

	docs, err := d.GetAll(ctx, col)
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, ErrNothingToDelete
	}

	if err = d.journal.Record(ctx, d.backend, col, docs...); err != nil {
		return 0, fmt.Errorf("journal deletion: %w", err)
	}

	if err = d.adapter.Delete(ctx, col, models.DocumentIDs(docs)); err != nil {
		return 0, fmt.Errorf("delete documents: %w", mapCollectionError(err, col.Name))
	}

	log.Info().
		Str("collection", col.Name).
		Int("documents", len(docs)).
		Msg("all documents deleted")
	return len(docs), nil
}

func (d *documentService) Journal(ctx context.Context, col models.Collection, limit int) ([]models.DeletedDocument, error) {
	entries, err := d.journal.List(ctx, col.Name, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	return entries, nil
}
