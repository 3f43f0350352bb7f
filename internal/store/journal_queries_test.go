// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-vector-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertDeletedDocumentsQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	docs := []models.Document{
		{ID: "a", Text: "alpha", Metadata: map[string]any{"k": "v"}},
		{ID: "b"},
	}

	query, args, err := buildInsertDeletedDocumentsQuery("chroma", "docs", docs, at)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into deleted_documents")
	assert.Equal(t, 12, strings.Count(query, "?"))
	assert.NotContains(t, query, "$1")

	require.Len(t, args, 12)
	assert.Equal(t, []any{"chroma", "docs", "a", "alpha", `{"k":"v"}`, at}, args[:6])
	// пустые метаданные пишутся как NULL
	assert.Nil(t, args[10])
}

func Test_buildInsertDeletedDocumentsQuery_BadMetadata(t *testing.T) {
	docs := []models.Document{{ID: "a", Metadata: map[string]any{"nan": math.NaN()}}}

	_, _, err := buildInsertDeletedDocumentsQuery("chroma", "docs", docs, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncodingMetadata)
}

func Test_buildListDeletedDocumentsQuery(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit bool
	}{
		{name: "with limit", limit: 10, wantLimit: true},
		{name: "unlimited", limit: 0, wantLimit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListDeletedDocumentsQuery("docs", tt.limit)
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.Contains(t, q, "from deleted_documents")
			assert.Contains(t, q, "where collection = ?")
			assert.Contains(t, q, "order by deleted_at desc, id desc")
			assert.Equal(t, tt.wantLimit, strings.Contains(q, "limit 10"))
			assert.Equal(t, []any{"docs"}, args)
		})
	}
}
