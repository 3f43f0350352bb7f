// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-vector-console/internal/config"
	"github.com/MKhiriev/go-vector-console/internal/logger"
)

// NewVectorStoreAdapter constructs the [VectorStoreAdapter] for the backend
// named in cfg.Backend.
func NewVectorStoreAdapter(cfg config.ConsoleAdapter, log *logger.Logger) (VectorStoreAdapter, error) {
	switch cfg.Backend {
	case config.BackendChroma:
		return NewChromaAdapter(cfg, log)
	case config.BackendQdrant:
		return NewQdrantAdapter(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}
