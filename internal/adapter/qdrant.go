// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/go-vector-console/internal/config"
	"github.com/MKhiriev/go-vector-console/internal/logger"
	"github.com/MKhiriev/go-vector-console/models"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
)

const qdrantUserAgent = "vector-console"

type qdrantAdapter struct {
	api            QdrantAPI
	endpoint       string
	textField      string
	pageSize       int
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewQdrantAdapter constructs a gRPC implementation of [VectorStoreAdapter]
// for a Qdrant server. The connection is established lazily by the SDK, so
// an unreachable server surfaces on the first call, not here.
func NewQdrantAdapter(cfg config.ConsoleAdapter, log *logger.Logger) (VectorStoreAdapter, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Qdrant.Host,
		Port:                   cfg.Qdrant.Port,
		APIKey:                 cfg.Qdrant.APIKey,
		UseTLS:                 cfg.Qdrant.TLS,
		SkipCompatibilityCheck: true,
		GrpcOptions:            []grpc.DialOption{grpc.WithUserAgent(qdrantUserAgent)},
	})
	if err != nil {
		return nil, fmt.Errorf("init qdrant client: %w", err)
	}

	return newQdrantAdapter(client, cfg, log), nil
}

func newQdrantAdapter(api QdrantAPI, cfg config.ConsoleAdapter, log *logger.Logger) *qdrantAdapter {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	textField := cfg.Qdrant.TextField
	if textField == "" {
		textField = "document"
	}

	return &qdrantAdapter{
		api:            api,
		endpoint:       net.JoinHostPort(cfg.Qdrant.Host, strconv.Itoa(cfg.Qdrant.Port)),
		textField:      textField,
		pageSize:       pageSize,
		requestTimeout: cfg.RequestTimeout,
		logger:         log,
	}
}

// callContext bounds a single gRPC call by the configured request timeout.
func (q *qdrantAdapter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, q.requestTimeout)
}

// Endpoint implements [VectorStoreAdapter].
func (q *qdrantAdapter) Endpoint() string {
	return q.endpoint
}

// Heartbeat implements [VectorStoreAdapter] via the gRPC health check.
func (q *qdrantAdapter) Heartbeat(ctx context.Context) error {
	ctx, cancel := q.callContext(ctx)
	defer cancel()

	reply, err := q.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("heartbeat: %w", mapGRPCError(err))
	}

	q.logger.Debug().Str("version", reply.GetVersion()).Msg("qdrant health check passed")
	return nil
}

// ListCollections implements [VectorStoreAdapter]. Qdrant addresses
// collections by name, so ID and Name are equal.
func (q *qdrantAdapter) ListCollections(ctx context.Context) ([]models.Collection, error) {
	ctx, cancel := q.callContext(ctx)
	defer cancel()

	names, err := q.api.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", mapGRPCError(err))
	}

	collections := make([]models.Collection, 0, len(names))
	for _, name := range names {
		collections = append(collections, models.Collection{ID: name, Name: name})
	}
	return collections, nil
}

// GetCollection implements [VectorStoreAdapter].
func (q *qdrantAdapter) GetCollection(ctx context.Context, name string) (models.Collection, error) {
	ctx, cancel := q.callContext(ctx)
	defer cancel()

	exists, err := q.api.CollectionExists(ctx, name)
	if err != nil {
		return models.Collection{}, fmt.Errorf("get collection: %w", mapGRPCError(err))
	}
	if !exists {
		return models.Collection{}, fmt.Errorf("%w: collection %q", ErrNotFound, name)
	}

	return models.Collection{ID: name, Name: name}, nil
}

// Count implements [VectorStoreAdapter] with an exact count.
func (q *qdrantAdapter) Count(ctx context.Context, col models.Collection) (int, error) {
	ctx, cancel := q.callContext(ctx)
	defer cancel()

	count, err := q.api.Count(ctx, &qdrant.CountPoints{
		CollectionName: col.ID,
		Exact:          qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, fmt.Errorf("count: %w", mapGRPCError(err))
	}

	return int(count), nil
}

// GetDocuments implements [VectorStoreAdapter]. Without ids the collection
// is scrolled page by page; each page asks for one extra point whose id
// becomes the next offset.
func (q *qdrantAdapter) GetDocuments(ctx context.Context, col models.Collection, ids ...string) ([]models.Document, error) {
	if len(ids) > 0 {
		return q.getByIDs(ctx, col, ids)
	}

	var (
		documents []models.Document
		offset    *qdrant.PointId
	)
	for {
		points, err := q.scroll(ctx, col, offset)
		if err != nil {
			return nil, fmt.Errorf("scroll documents: %w", mapGRPCError(err))
		}

		offset = nil
		if len(points) > q.pageSize {
			offset = points[q.pageSize].GetId()
			points = points[:q.pageSize]
		}

		for _, p := range points {
			documents = append(documents, pointToDocument(p, q.textField))
		}

		if offset == nil {
			break
		}
	}

	q.logger.Debug().
		Str("collection", col.Name).
		Int("documents", len(documents)).
		Msg("documents fetched")
	return documents, nil
}

func (q *qdrantAdapter) scroll(ctx context.Context, col models.Collection, offset *qdrant.PointId) ([]*qdrant.RetrievedPoint, error) {
	ctx, cancel := q.callContext(ctx)
	defer cancel()

	return q.api.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: col.ID,
		Offset:         offset,
		Limit:          qdrant.PtrOf(uint32(q.pageSize + 1)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
}

func (q *qdrantAdapter) getByIDs(ctx context.Context, col models.Collection, ids []string) ([]models.Document, error) {
	pointIDs := parsePointIDs(ids)
	if len(pointIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := q.callContext(ctx)
	defer cancel()

	points, err := q.api.Get(ctx, &qdrant.GetPoints{
		CollectionName: col.ID,
		Ids:            pointIDs,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get documents: %w", mapGRPCError(err))
	}

	documents := make([]models.Document, 0, len(points))
	for _, p := range points {
		documents = append(documents, pointToDocument(p, q.textField))
	}
	return documents, nil
}

// Delete implements [VectorStoreAdapter]. Each batch waits for the server to
// apply the operation. Every id must name a Qdrant point; otherwise nothing
// is deleted and [ErrBadRequest] is returned.
func (q *qdrantAdapter) Delete(ctx context.Context, col models.Collection, ids []string) error {
	pointIDs, err := toPointIDs(ids)
	if err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}

	for _, batch := range batches(pointIDs, q.pageSize) {
		result, err := q.deleteBatch(ctx, col, batch)
		if err != nil {
			return fmt.Errorf("delete documents: %w", mapGRPCError(err))
		}

		q.logger.Debug().
			Str("collection", col.Name).
			Int("ids", len(batch)).
			Str("status", result.GetStatus().String()).
			Msg("documents deleted")
	}

	return nil
}

func (q *qdrantAdapter) deleteBatch(ctx context.Context, col models.Collection, pointIDs []*qdrant.PointId) (*qdrant.UpdateResult, error) {
	ctx, cancel := q.callContext(ctx)
	defer cancel()

	return q.api.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: col.ID,
		Wait:           qdrant.PtrOf(true),
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Points{
				Points: &qdrant.PointsIdsList{Ids: pointIDs},
			},
		},
	})
}

// Close implements [VectorStoreAdapter]. It releases the gRPC connection
// when the API supports it.
func (q *qdrantAdapter) Close() error {
	if closer, ok := q.api.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
