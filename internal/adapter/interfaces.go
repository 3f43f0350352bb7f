// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote vector database.
//
// The primary abstraction is [VectorStoreAdapter], which decouples the service
// layer from the backend and its protocol. The package ships a Chroma
// HTTP/REST implementation ([NewChromaAdapter]) and a Qdrant gRPC
// implementation ([NewQdrantAdapter]); [NewVectorStoreAdapter] picks one by
// configured backend name.
//
// Error values defined in errors.go are mapped from HTTP status codes and gRPC
// status codes so that callers can use [errors.Is] for backend-agnostic error
// handling (e.g. [ErrNotFound] for a missing collection).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vector-console/models"
	"github.com/qdrant/go-client/qdrant"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vector_store_adapter_mock.go -package=mock

// VectorStoreAdapter defines backend-agnostic access to the remote vector
// database. Every method issues at most a bounded number of remote calls and
// never retries.
type VectorStoreAdapter interface {
	// Endpoint returns the host:port the adapter talks to, for display.
	Endpoint() string

	// Heartbeat checks that the remote service answers.
	Heartbeat(ctx context.Context) error

	// ListCollections enumerates all collections in the order the service
	// returns them.
	ListCollections(ctx context.Context) ([]models.Collection, error)

	// GetCollection fetches a collection handle by name. Returns [ErrNotFound]
	// (wrapped) when no collection with that name exists.
	GetCollection(ctx context.Context, name string) (models.Collection, error)

	// Count returns the number of records stored in col.
	Count(ctx context.Context, col models.Collection) (int, error)

	// GetDocuments returns the records of col with their ids, text and
	// metadata. With no ids every record is returned; otherwise only the
	// records whose ids exist are returned.
	GetDocuments(ctx context.Context, col models.Collection, ids ...string) ([]models.Document, error)

	// Delete removes the records with the given ids from col. An empty id
	// list is a no-op.
	Delete(ctx context.Context, col models.Collection, ids []string) error

	// Close releases transport resources held by the adapter.
	Close() error
}

// QdrantAPI is the subset of *qdrant.Client used by the Qdrant adapter.
type QdrantAPI interface {
	HealthCheck(ctx context.Context) (*qdrant.HealthCheckReply, error)
	ListCollections(ctx context.Context) ([]string, error)
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	Count(ctx context.Context, request *qdrant.CountPoints) (uint64, error)
	Scroll(ctx context.Context, request *qdrant.ScrollPoints) ([]*qdrant.RetrievedPoint, error)
	Get(ctx context.Context, request *qdrant.GetPoints) ([]*qdrant.RetrievedPoint, error)
	Delete(ctx context.Context, request *qdrant.DeletePoints) (*qdrant.UpdateResult, error)
}
