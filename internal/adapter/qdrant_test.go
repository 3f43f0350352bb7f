package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-vector-console/internal/config"
	"github.com/MKhiriev/go-vector-console/internal/logger"
	"github.com/MKhiriev/go-vector-console/internal/mock"
	"github.com/MKhiriev/go-vector-console/models"
	"github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestQdrant(t *testing.T, ctrl *gomock.Controller, pageSize int) (*qdrantAdapter, *mock.MockQdrantAPI) {
	t.Helper()
	api := mock.NewMockQdrantAPI(ctrl)
	cfg := config.ConsoleAdapter{
		Backend:  config.BackendQdrant,
		PageSize: pageSize,
		Qdrant:   config.Qdrant{Host: "qdrant.local", Port: 6334, TextField: "text"},
	}
	return newQdrantAdapter(api, cfg, logger.Nop()), api
}

func strValue(s string) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_StringValue{StringValue: s}}
}

func point(id uint64, text string) *qdrant.RetrievedPoint {
	return &qdrant.RetrievedPoint{
		Id:      qdrant.NewIDNum(id),
		Payload: map[string]*qdrant.Value{"text": strValue(text)},
	}
}

var qdrantCol = models.Collection{ID: "docs", Name: "docs"}

func TestQdrant_Endpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, _ := newTestQdrant(t, ctrl, 10)

	assert.Equal(t, "qdrant.local:6334", a.Endpoint())
}

func TestQdrant_Heartbeat_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 10)

	api.EXPECT().HealthCheck(gomock.Any()).Return(nil, status.Error(codes.Unavailable, "connection refused"))

	err := a.Heartbeat(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestQdrant_Heartbeat_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 10)

	api.EXPECT().HealthCheck(gomock.Any()).Return(&qdrant.HealthCheckReply{Title: "qdrant", Version: "1.16.0"}, nil)

	assert.NoError(t, a.Heartbeat(context.Background()))
}

// ── Collections ──────────────────────────────────────────────────────────────

func TestQdrant_ListCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 10)

	api.EXPECT().ListCollections(gomock.Any()).Return([]string{"b", "a"}, nil)

	got, err := a.ListCollections(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Collection{{ID: "b", Name: "b"}, {ID: "a", Name: "a"}}, got)
}

func TestQdrant_GetCollection_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 10)

	api.EXPECT().CollectionExists(gomock.Any(), "nope").Return(false, nil)

	_, err := a.GetCollection(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQdrant_GetCollection_Exists(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 10)

	api.EXPECT().CollectionExists(gomock.Any(), "docs").Return(true, nil)

	got, err := a.GetCollection(context.Background(), "docs")
	require.NoError(t, err)
	assert.Equal(t, qdrantCol, got)
}

func TestQdrant_Count_Exact(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 10)

	api.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.CountPoints) (uint64, error) {
			assert.Equal(t, "docs", req.GetCollectionName())
			assert.True(t, req.GetExact())
			return 7, nil
		},
	)

	got, err := a.Count(context.Background(), qdrantCol)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

// ── GetDocuments ─────────────────────────────────────────────────────────────

func TestQdrant_GetDocuments_ScrollsAllPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 2)

	gomock.InOrder(
		api.EXPECT().Scroll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *qdrant.ScrollPoints) ([]*qdrant.RetrievedPoint, error) {
				assert.Nil(t, req.GetOffset())
				assert.Equal(t, uint32(3), req.GetLimit())
				return []*qdrant.RetrievedPoint{point(1, "one"), point(2, "two"), point(3, "three")}, nil
			},
		),
		api.EXPECT().Scroll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *qdrant.ScrollPoints) ([]*qdrant.RetrievedPoint, error) {
				assert.Equal(t, uint64(3), req.GetOffset().GetNum())
				return []*qdrant.RetrievedPoint{point(3, "three")}, nil
			},
		),
	)

	got, err := a.GetDocuments(context.Background(), qdrantCol)

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, models.DocumentIDs(got))
	assert.Equal(t, "three", got[2].Text)
}

func TestQdrant_GetDocuments_PayloadBecomesMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 10)

	p := &qdrant.RetrievedPoint{
		Id: qdrant.NewID("5f1b8c8e-0a4e-4c55-9d1c-2a6f0e7f1b11"),
		Payload: map[string]*qdrant.Value{
			"text":  strValue("body"),
			"page":  {Kind: &qdrant.Value_IntegerValue{IntegerValue: 4}},
			"draft": {Kind: &qdrant.Value_BoolValue{BoolValue: true}},
			"tags": {Kind: &qdrant.Value_ListValue{ListValue: &qdrant.ListValue{
				Values: []*qdrant.Value{strValue("a"), strValue("b")},
			}}},
		},
	}
	api.EXPECT().Scroll(gomock.Any(), gomock.Any()).Return([]*qdrant.RetrievedPoint{p}, nil)

	got, err := a.GetDocuments(context.Background(), qdrantCol)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "5f1b8c8e-0a4e-4c55-9d1c-2a6f0e7f1b11", got[0].ID)
	assert.Equal(t, "body", got[0].Text)
	assert.Equal(t, map[string]any{
		"page":  int64(4),
		"draft": true,
		"tags":  []any{"a", "b"},
	}, got[0].Metadata)
}

func TestQdrant_GetDocuments_ByIDs_SkipsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 10)

	api.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.GetPoints) ([]*qdrant.RetrievedPoint, error) {
			require.Len(t, req.GetIds(), 1)
			assert.Equal(t, uint64(42), req.GetIds()[0].GetNum())
			return []*qdrant.RetrievedPoint{point(42, "x")}, nil
		},
	)

	got, err := a.GetDocuments(context.Background(), qdrantCol, "42", "not-an-id")

	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, models.DocumentIDs(got))
}

func TestQdrant_GetDocuments_ByIDs_AllInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, _ := newTestQdrant(t, ctrl, 10)

	got, err := a.GetDocuments(context.Background(), qdrantCol, "not-an-id")

	require.NoError(t, err)
	assert.Empty(t, got)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestQdrant_Delete_Batches(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 2)

	var sizes []int
	api.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, req *qdrant.DeletePoints) (*qdrant.UpdateResult, error) {
			assert.True(t, req.GetWait())
			sizes = append(sizes, len(req.GetPoints().GetPoints().GetIds()))
			return &qdrant.UpdateResult{Status: qdrant.UpdateStatus_Completed}, nil
		},
	)

	err := a.Delete(context.Background(), qdrantCol, []string{"1", "2", "3"})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, sizes)
}

func TestQdrant_Delete_MapsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 2)

	api.EXPECT().Delete(gomock.Any(), gomock.Any()).
		Return(nil, status.Error(codes.NotFound, "Collection `docs` doesn't exist"))

	err := a.Delete(context.Background(), qdrantCol, []string{"1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQdrant_Delete_RejectsUnparseableIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, _ := newTestQdrant(t, ctrl, 2)

	// Delete на API не вызывается вовсе: контроллер упадёт на неожиданном вызове
	err := a.Delete(context.Background(), qdrantCol, []string{"1", "not-an-id"})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), `"not-an-id"`)
}

func TestQdrant_Delete_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, _ := newTestQdrant(t, ctrl, 2)

	assert.NoError(t, a.Delete(context.Background(), qdrantCol, nil))
}

// ── Request timeout ──────────────────────────────────────────────────────────

func TestQdrant_RequestTimeoutBoundsEachCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockQdrantAPI(ctrl)
	a := newQdrantAdapter(api, config.ConsoleAdapter{
		Backend:        config.BackendQdrant,
		RequestTimeout: 50 * time.Millisecond,
		Qdrant:         config.Qdrant{Host: "qdrant.local", Port: 6334},
	}, logger.Nop())

	api.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *qdrant.CountPoints) (uint64, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			select {
			case <-ctx.Done():
				return 0, status.FromContextError(ctx.Err()).Err()
			case <-time.After(2 * time.Second):
				return 1, nil
			}
		},
	)

	started := time.Now()
	_, err := a.Count(context.Background(), qdrantCol)
	elapsed := time.Since(started)

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Less(t, elapsed, time.Second)
}

func TestQdrant_NoRequestTimeoutLeavesContextOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, api := newTestQdrant(t, ctrl, 10)

	api.EXPECT().ListCollections(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]string, error) {
			_, hasDeadline := ctx.Deadline()
			assert.False(t, hasDeadline)
			return nil, nil
		},
	)

	_, err := a.ListCollections(context.Background())
	assert.NoError(t, err)
}

func TestQdrant_Close_WithoutCloser(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, _ := newTestQdrant(t, ctrl, 2)

	assert.NoError(t, a.Close())
}

func TestNewVectorStoreAdapter_Unsupported(t *testing.T) {
	_, err := NewVectorStoreAdapter(config.ConsoleAdapter{Backend: "milvus"}, logger.Nop())

	assert.True(t, errors.Is(err, ErrUnsupportedBackend))
}
