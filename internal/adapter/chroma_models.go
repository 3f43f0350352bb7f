package adapter

import "github.com/MKhiriev/go-vector-console/models"

type chromaCollection struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Metadata map[string]any `json:"metadata"`
}

func (c chromaCollection) toModel() models.Collection {
	return models.Collection{ID: c.ID, Name: c.Name, Metadata: c.Metadata}
}

type chromaGetRequest struct {
	IDs     []string `json:"ids,omitempty"`
	Include []string `json:"include"`
	Limit   *int     `json:"limit,omitempty"`
	Offset  *int     `json:"offset,omitempty"`
}

// chromaGetResponse holds parallel arrays; documents and metadatas entries
// may be null.
type chromaGetResponse struct {
	IDs       []string         `json:"ids"`
	Documents []*string        `json:"documents"`
	Metadatas []map[string]any `json:"metadatas"`
}

func (r chromaGetResponse) toModels() []models.Document {
	documents := make([]models.Document, 0, len(r.IDs))
	for i, id := range r.IDs {
		doc := models.Document{ID: id}
		if i < len(r.Documents) && r.Documents[i] != nil {
			doc.Text = *r.Documents[i]
		}
		if i < len(r.Metadatas) && len(r.Metadatas[i]) > 0 {
			doc.Metadata = r.Metadatas[i]
		}
		documents = append(documents, doc)
	}
	return documents
}

type chromaDeleteRequest struct {
	IDs []string `json:"ids"`
}
