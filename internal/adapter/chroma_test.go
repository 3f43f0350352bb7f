// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-vector-console/internal/config"
	"github.com/MKhiriev/go-vector-console/internal/logger"
	"github.com/MKhiriev/go-vector-console/internal/utils"
	"github.com/MKhiriev/go-vector-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCollectionsPath = "/api/v2/tenants/t1/databases/db1/collections"

// newTestChroma создаёт chromaAdapter, направленный на тестовый сервер
func newTestChroma(t *testing.T, serverURL string, pageSize int) *chromaAdapter {
	t.Helper()
	u, err := url.Parse(serverURL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := config.ConsoleAdapter{
		Backend:        config.BackendChroma,
		RequestTimeout: 5 * time.Second,
		PageSize:       pageSize,
		Chroma: config.Chroma{
			Host:     host,
			Port:     port,
			Tenant:   "t1",
			Database: "db1",
		},
	}

	a, err := NewChromaAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*chromaAdapter)
}

func decodeBody(t *testing.T, r *http.Request, v any) {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}

var testCol = models.Collection{ID: "c-uuid", Name: "docs"}

// ── Heartbeat ────────────────────────────────────────────────────────────────

func TestChroma_Heartbeat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v2/heartbeat", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))
		_, _ = w.Write([]byte(`{"nanosecond heartbeat": 1}`))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 10)
	require.NoError(t, a.Heartbeat(context.Background()))
}

func TestChroma_Heartbeat_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestChroma(t, srv.URL, 10)
	srv.Close()

	err := a.Heartbeat(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestChroma_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	host, portStr, _ := net.SplitHostPort(u.Host)
	port, _ := strconv.Atoi(portStr)
	a, err := NewChromaAdapter(config.ConsoleAdapter{
		RequestTimeout: time.Second,
		Chroma:         config.Chroma{Host: host, Port: port, Token: " secret "},
	}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, a.Heartbeat(context.Background()))
	assert.Equal(t, u.Host, a.Endpoint())
}

// ── ListCollections ──────────────────────────────────────────────────────────

func TestChroma_ListCollections_Paginates(t *testing.T) {
	var offsets []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testCollectionsPath, r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		offset := r.URL.Query().Get("offset")
		offsets = append(offsets, offset)

		w.Header().Set("Content-Type", "application/json")
		switch offset {
		case "0":
			_, _ = w.Write([]byte(`[{"id":"1","name":"alpha"},{"id":"2","name":"beta"}]`))
		default:
			_, _ = w.Write([]byte(`[{"id":"3","name":"gamma","metadata":{"k":"v"}}]`))
		}
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 2)
	got, err := a.ListCollections(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2"}, offsets)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, models.CollectionNames(got))
	assert.Equal(t, "3", got[2].ID)
	assert.Equal(t, "v", got[2].Metadata["k"])
}

func TestChroma_ListCollections_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 10)
	got, err := a.ListCollections(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestChroma_ListCollections_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"AuthError","message":"missing token"}`))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 10)
	_, err := a.ListCollections(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "missing token")
}

// ── GetCollection ────────────────────────────────────────────────────────────

func TestChroma_GetCollection_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testCollectionsPath+"/docs", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"c-uuid","name":"docs"}`))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 10)
	got, err := a.GetCollection(context.Background(), "docs")

	require.NoError(t, err)
	assert.Equal(t, testCol, got)
}

func TestChroma_GetCollection_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"NotFoundError","message":"Collection [nope] does not exists"}`))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 10)
	_, err := a.GetCollection(context.Background(), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Collection [nope] does not exists")
}

// Старые версии сервера отвечают 400 на отсутствующую коллекцию
func TestChroma_GetCollection_LegacyNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"ValueError","message":"Collection nope does not exist."}`))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 10)
	_, err := a.GetCollection(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Count ────────────────────────────────────────────────────────────────────

func TestChroma_Count_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testCollectionsPath+"/c-uuid/count", r.URL.Path)
		_, _ = w.Write([]byte("42\n"))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 10)
	got, err := a.Count(context.Background(), testCol)

	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestChroma_Count_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":"x"}`))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 10)
	_, err := a.Count(context.Background(), testCol)

	assert.Error(t, err)
}

// ── GetDocuments ─────────────────────────────────────────────────────────────

func TestChroma_GetDocuments_AllPaged(t *testing.T) {
	var requests []chromaGetRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testCollectionsPath+"/c-uuid/get", r.URL.Path)

		var req chromaGetRequest
		decodeBody(t, r, &req)
		requests = append(requests, req)

		if *req.Offset == 0 {
			_, _ = w.Write([]byte(`{"ids":["a","b"],"documents":["hello",null],"metadatas":[{"src":"x"},null]}`))
			return
		}
		_, _ = w.Write([]byte(`{"ids":["c"],"documents":["third"],"metadatas":[{}]}`))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 2)
	got, err := a.GetDocuments(context.Background(), testCol)

	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, []string{"documents", "metadatas"}, requests[0].Include)
	assert.Equal(t, 2, *requests[0].Limit)
	assert.Equal(t, 2, *requests[1].Offset)
	assert.Empty(t, requests[0].IDs)

	assert.Equal(t, []models.Document{
		{ID: "a", Text: "hello", Metadata: map[string]any{"src": "x"}},
		{ID: "b"},
		{ID: "c", Text: "third"},
	}, got)
}

func TestChroma_GetDocuments_ByIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chromaGetRequest
		decodeBody(t, r, &req)
		assert.Equal(t, []string{"a", "zzz"}, req.IDs)
		assert.Nil(t, req.Limit)
		assert.Nil(t, req.Offset)

		_, _ = w.Write([]byte(`{"ids":["a"],"documents":["hello"],"metadatas":[null]}`))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 2)
	got, err := a.GetDocuments(context.Background(), testCol, "a", "zzz")

	require.NoError(t, err)
	assert.Equal(t, []models.Document{{ID: "a", Text: "hello"}}, got)
}

func TestChroma_GetDocuments_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 2)
	_, err := a.GetDocuments(context.Background(), testCol)

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestChroma_Delete_Batches(t *testing.T) {
	var batchesSeen [][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testCollectionsPath+"/c-uuid/delete", r.URL.Path)
		var req chromaDeleteRequest
		decodeBody(t, r, &req)
		batchesSeen = append(batchesSeen, req.IDs)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 2)
	err := a.Delete(context.Background(), testCol, []string{"1", "2", "3", "4", "5"})

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}, {"5"}}, batchesSeen)
}

func TestChroma_Delete_EmptyIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 2)
	require.NoError(t, a.Delete(context.Background(), testCol, nil))
	assert.False(t, called)
}

func TestChroma_Delete_StopsOnFirstFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestChroma(t, srv.URL, 1)
	err := a.Delete(context.Background(), testCol, []string{"1", "2"})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, 1, calls)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "keeps https", raw: "https://db.local:443/", want: "https://db.local:443"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://:8000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
