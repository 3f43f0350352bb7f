package store

import (
	"context"

	"github.com/MKhiriev/go-vector-console/models"
)

// nopJournal is used when no journal DSN is configured.
type nopJournal struct{}

// NewNopJournal returns a [JournalRepository] that records nothing.
func NewNopJournal() JournalRepository {
	return nopJournal{}
}

func (nopJournal) Record(context.Context, string, models.Collection, ...models.Document) error {
	return nil
}

func (nopJournal) List(context.Context, string, int) ([]models.DeletedDocument, error) {
	return nil, ErrJournalDisabled
}

func (nopJournal) Close() error {
	return nil
}
