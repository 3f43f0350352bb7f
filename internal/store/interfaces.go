// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the local deletion journal: a record of every
// document removed through the console, kept in a SQLite file so that
// deleted text and metadata can be looked up after the fact.
package store

import (
	"context"

	"github.com/MKhiriev/go-vector-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_repository_mock.go -package=mock

// JournalRepository records deleted documents and lists them back.
type JournalRepository interface {
	// Record stores docs as deleted from collection col on backend. All rows
	// are written in one transaction.
	Record(ctx context.Context, backend string, col models.Collection, docs ...models.Document) error
	// List returns at most limit journal entries for the named collection,
	// newest first. A limit <= 0 means no limit.
	List(ctx context.Context, collection string, limit int) ([]models.DeletedDocument, error)
	// Close releases the underlying database handle.
	Close() error
}
