// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Document is a single record stored in a collection: an id, a text body and
// an optional metadata mapping.
type Document struct {
	ID       string         `json:"id"`
	Text     string         `json:"document"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// DocumentIDs returns the ids of docs in their original order.
func DocumentIDs(docs []Document) []string {
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}

// DeletedDocument is a journal entry describing a record removed from the
// remote store by the console.
type DeletedDocument struct {
	JournalID  int64     `json:"journal_id"`
	Backend    string    `json:"backend"`
	Collection string    `json:"collection"`
	DocumentID string    `json:"document_id"`
	Text       string    `json:"document"`
	Metadata   []byte    `json:"metadata,omitempty"`
	DeletedAt  time.Time `json:"deleted_at"`
}
