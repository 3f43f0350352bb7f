package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-vector-console/internal/adapter"
	"github.com/MKhiriev/go-vector-console/models"
)

type collectionService struct {
	adapter adapter.VectorStoreAdapter
}

func NewCollectionService(vectorStore adapter.VectorStoreAdapter) CollectionService {
	return &collectionService{adapter: vectorStore}
}

func (c *collectionService) List(ctx context.Context) ([]models.Collection, error) {
	collections, err := c.adapter.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

func (c *collectionService) Select(ctx context.Context, choice string, listed []models.Collection) (models.Collection, error) {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return models.Collection{}, ErrEmptyChoice
	}

	if isDigits(choice) {
		if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(listed) {
			return listed[idx-1], nil
		}
	}

	col, err := c.adapter.GetCollection(ctx, choice)
	if err != nil {
		return models.Collection{}, mapCollectionError(err, choice)
	}
	return col, nil
}

func (c *collectionService) Count(ctx context.Context, col models.Collection) (int, error) {
	count, err := c.adapter.Count(ctx, col)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", mapCollectionError(err, col.Name))
	}
	return count, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
