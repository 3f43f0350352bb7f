// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection is a named grouping of documents in the remote vector database.
//
// ID is the identifier the backend expects in record-level calls. For Chroma
// it is the collection UUID, for Qdrant it equals Name.
type Collection struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// CollectionNames returns the names of cols in their original order.
func CollectionNames(cols []Collection) []string {
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Name)
	}
	return names
}
