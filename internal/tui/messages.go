package tui

import (
	"github.com/MKhiriev/go-vector-console/models"
)

type collectionsLoadedMsg struct {
	collections []models.Collection
	forSelect   bool
	err         error
}

type collectionSelectedMsg struct {
	collection models.Collection
	err        error
}

type countLoadedMsg struct {
	count int
	err   error
}

// loadPurpose tells documentsLoadedMsg which screen asked for the data.
type loadPurpose int

const (
	purposeView loadPurpose = iota
	purposeIDs
	purposeDeleteOne
	purposeDeleteAll
)

type documentsLoadedMsg struct {
	purpose loadPurpose
	count   int
	docs    []models.Document
	ids     []string
	err     error
}

type documentDeletedMsg struct {
	id  string
	err error
}

type allDeletedMsg struct {
	deleted int
	err     error
}

type journalLoadedMsg struct {
	entries []models.DeletedDocument
	err     error
}

type copiedMsg struct {
	text string
	err  error
}
