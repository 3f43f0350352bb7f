package service

import (
	"github.com/MKhiriev/go-vector-console/internal/adapter"
	"github.com/MKhiriev/go-vector-console/internal/store"
)

// Services groups every console service.
type Services struct {
	CollectionService CollectionService
	DocumentService   DocumentService
}

// NewServices wires the services over the given adapter and journal. backend
// is the configured backend name written into journal entries.
func NewServices(vectorStore adapter.VectorStoreAdapter, journal store.JournalRepository, backend string) *Services {
	return &Services{
		CollectionService: NewCollectionService(vectorStore),
		DocumentService:   NewDocumentService(vectorStore, journal, backend),
	}
}
