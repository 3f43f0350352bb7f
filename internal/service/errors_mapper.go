// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vector-console/internal/adapter"
)

// mapCollectionError translates a missing-collection transport error into
// [ErrCollectionNotFound]. The original error stays in the chain.
func mapCollectionError(err error, name string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %q: %w", ErrCollectionNotFound, name, err)
	}

	return err
}
