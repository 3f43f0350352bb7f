package service

import (
	"context"

	"github.com/MKhiriev/go-vector-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CollectionService resolves and inspects collections on the remote vector
// database.
type CollectionService interface {
	// List returns every collection in the order the server reports them.
	List(ctx context.Context) ([]models.Collection, error)

	// Select resolves a user's choice against the previously listed
	// collections. The choice is trimmed first; an empty choice yields
	// [ErrEmptyChoice]. A number within 1..len(listed) selects by position,
	// anything else (including out-of-range numbers) is looked up by name.
	// Returns [ErrCollectionNotFound] when no such collection exists.
	Select(ctx context.Context, choice string, listed []models.Collection) (models.Collection, error)

	// Count returns the number of documents in col.
	Count(ctx context.Context, col models.Collection) (int, error)
}

// DocumentService reads and deletes documents of a selected collection.
// Every deletion is written to the deletion journal before the remote
// delete is issued; a journal failure aborts the deletion.
type DocumentService interface {
	// GetAll returns every document with its text and metadata.
	GetAll(ctx context.Context, col models.Collection) ([]models.Document, error)

	// IDs returns the ids of every document.
	IDs(ctx context.Context, col models.Collection) ([]string, error)

	// Delete removes a single document. Returns [ErrEmptyDocumentID] for a
	// blank id and [ErrDocumentNotFound] when the id is not in col; nothing
	// is deleted in either case.
	Delete(ctx context.Context, col models.Collection, id string) error

	// DeleteAll removes every document in col and returns how many were
	// deleted. Returns [ErrNothingToDelete] for an empty collection.
	DeleteAll(ctx context.Context, col models.Collection) (int, error)

	// Journal lists up to limit journaled deletions for col, newest first.
	Journal(ctx context.Context, col models.Collection, limit int) ([]models.DeletedDocument, error)
}
