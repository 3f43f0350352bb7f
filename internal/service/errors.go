package service

import "errors"

// Collection selection errors.
var (
	// ErrEmptyChoice is returned by Select when the user entered nothing.
	ErrEmptyChoice = errors.New("no collection chosen")

	// ErrCollectionNotFound is returned when a collection name does not
	// resolve on the server.
	ErrCollectionNotFound = errors.New("collection not found")
)

// Document errors.
var (
	// ErrEmptyDocumentID is returned by Delete for a blank id.
	ErrEmptyDocumentID = errors.New("document id is empty")

	// ErrDocumentNotFound is returned by Delete when the id does not exist in
	// the collection.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrNothingToDelete is returned by DeleteAll for an empty collection.
	ErrNothingToDelete = errors.New("no documents to delete")
)
