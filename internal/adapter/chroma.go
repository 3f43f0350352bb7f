// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/config"
	"github.com/MKhiriev/go-vector-console/internal/logger"
	"github.com/MKhiriev/go-vector-console/internal/utils"
	"github.com/MKhiriev/go-vector-console/models"
)

// Chroma v2 REST routes. {tenant} and {database} are bound once on the
// client; {collection} and {collection_id} per request.
const (
	chromaHeartbeatPath   = "/api/v2/heartbeat"
	chromaCollectionsPath = "/api/v2/tenants/{tenant}/databases/{database}/collections"
	chromaCollectionPath  = chromaCollectionsPath + "/{collection}"
	chromaCountPath       = chromaCollectionsPath + "/{collection_id}/count"
	chromaGetPath         = chromaCollectionsPath + "/{collection_id}/get"
	chromaDeletePath      = chromaCollectionsPath + "/{collection_id}/delete"
)

var chromaInclude = []string{"documents", "metadatas"}

type chromaAdapter struct {
	client   *utils.HTTPClient
	endpoint string
	pageSize int

	logger *logger.Logger
}

// NewChromaAdapter constructs an HTTP/REST implementation of
// [VectorStoreAdapter] for a Chroma server. The base URL is built from
// cfg.Chroma; tenant and database are bound as path parameters for every
// request and the optional token is sent as a bearer token.
func NewChromaAdapter(cfg config.ConsoleAdapter, log *logger.Logger) (VectorStoreAdapter, error) {
	endpoint := net.JoinHostPort(cfg.Chroma.Host, strconv.Itoa(cfg.Chroma.Port))
	scheme := "http"
	if cfg.Chroma.SSL {
		scheme = "https"
	}

	baseURL, err := normalizeBaseURL(scheme + "://" + endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid chroma address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetPathParams(map[string]string{
			"tenant":   cfg.Chroma.Tenant,
			"database": cfg.Chroma.Database,
		})
	if token := strings.TrimSpace(cfg.Chroma.Token); token != "" {
		client.SetAuthToken(token)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &chromaAdapter{client: client, endpoint: endpoint, pageSize: pageSize, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Endpoint implements [VectorStoreAdapter].
func (c *chromaAdapter) Endpoint() string {
	return c.endpoint
}

// Close implements [VectorStoreAdapter]. HTTP connections are pooled by the
// transport, so there is nothing to release.
func (c *chromaAdapter) Close() error {
	return nil
}

// Heartbeat implements [VectorStoreAdapter]. It issues GET /api/v2/heartbeat.
func (c *chromaAdapter) Heartbeat(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(chromaHeartbeatPath)
	if err != nil {
		return fmt.Errorf("heartbeat request: %w: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// ListCollections implements [VectorStoreAdapter]. Collections are requested
// page by page until a short page is returned.
func (c *chromaAdapter) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	for offset := 0; ; offset += c.pageSize {
		resp, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"limit":  strconv.Itoa(c.pageSize),
				"offset": strconv.Itoa(offset),
			}).
			Get(chromaCollectionsPath)
		if err != nil {
			return nil, fmt.Errorf("list collections request: %w: %w", ErrUnavailable, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		var page []chromaCollection
		if err = json.Unmarshal(resp.Body(), &page); err != nil {
			return nil, fmt.Errorf("list collections decode: %w", err)
		}

		for _, col := range page {
			collections = append(collections, col.toModel())
		}

		if len(page) < c.pageSize {
			break
		}
	}

	c.logger.Debug().Int("collections", len(collections)).Msg("collections listed")
	return collections, nil
}

// GetCollection implements [VectorStoreAdapter]. It issues
// GET .../collections/{name}.
func (c *chromaAdapter) GetCollection(ctx context.Context, name string) (models.Collection, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("collection", name).
		Get(chromaCollectionPath)
	if err != nil {
		return models.Collection{}, fmt.Errorf("get collection request: %w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Collection{}, err
	}

	var col chromaCollection
	if err = json.Unmarshal(resp.Body(), &col); err != nil {
		return models.Collection{}, fmt.Errorf("get collection decode: %w", err)
	}

	return col.toModel(), nil
}

// Count implements [VectorStoreAdapter]. The server answers with a bare
// integer.
func (c *chromaAdapter) Count(ctx context.Context, col models.Collection) (int, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("collection_id", col.ID).
		Get(chromaCountPath)
	if err != nil {
		return 0, fmt.Errorf("count request: %w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(resp.Body())))
	if err != nil {
		return 0, fmt.Errorf("count decode: %w", err)
	}

	return count, nil
}

// GetDocuments implements [VectorStoreAdapter]. Without ids every record is
// fetched in pages of pageSize; with ids a single lookup is made.
func (c *chromaAdapter) GetDocuments(ctx context.Context, col models.Collection, ids ...string) ([]models.Document, error) {
	if len(ids) > 0 {
		page, err := c.get(ctx, col, chromaGetRequest{IDs: ids, Include: chromaInclude})
		if err != nil {
			return nil, err
		}
		return page.toModels(), nil
	}

	var documents []models.Document
	for offset := 0; ; offset += c.pageSize {
		limit, off := c.pageSize, offset
		page, err := c.get(ctx, col, chromaGetRequest{Include: chromaInclude, Limit: &limit, Offset: &off})
		if err != nil {
			return nil, err
		}

		documents = append(documents, page.toModels()...)
		if len(page.IDs) < c.pageSize {
			break
		}
	}

	c.logger.Debug().
		Str("collection", col.Name).
		Int("documents", len(documents)).
		Msg("documents fetched")
	return documents, nil
}

func (c *chromaAdapter) get(ctx context.Context, col models.Collection, body chromaGetRequest) (chromaGetResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("collection_id", col.ID).
		SetBody(body).
		Post(chromaGetPath)
	if err != nil {
		return chromaGetResponse{}, fmt.Errorf("get documents request: %w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return chromaGetResponse{}, err
	}

	var page chromaGetResponse
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return chromaGetResponse{}, fmt.Errorf("get documents decode: %w", err)
	}

	return page, nil
}

// Delete implements [VectorStoreAdapter]. Ids are sent in batches of at most
// pageSize; the first failing batch stops the operation.
func (c *chromaAdapter) Delete(ctx context.Context, col models.Collection, ids []string) error {
	for _, batch := range batches(ids, c.pageSize) {
		resp, err := c.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetPathParam("collection_id", col.ID).
			SetBody(chromaDeleteRequest{IDs: batch}).
			Post(chromaDeletePath)
		if err != nil {
			return fmt.Errorf("delete documents request: %w: %w", ErrUnavailable, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		c.logger.Debug().
			Str("collection", col.Name).
			Int("ids", len(batch)).
			Msg("documents deleted")
	}

	return nil
}
