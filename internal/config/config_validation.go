// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PageSize <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Adapter.Backend {
	case BackendChroma:
		if err := validateEndpoint(cfg.Chroma.Host, cfg.Chroma.Port); err != nil {
			return err
		}
	case BackendQdrant:
		if err := validateEndpoint(cfg.Qdrant.Host, cfg.Qdrant.Port); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidAdapterConfigs, cfg.Adapter.Backend)
	}

	if cfg.Logger.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Logger.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLoggerConfigs, err)
		}
	}

	return nil
}

func validateEndpoint(host string, port int) error {
	if host == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidAdapterConfigs)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidAdapterConfigs, port)
	}
	return nil
}
