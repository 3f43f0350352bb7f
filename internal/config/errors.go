package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend settings (unknown
	// backend, empty host, bad port, zero timeout or page size).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLoggerConfigs indicates an unparseable log level.
	ErrInvalidLoggerConfigs = errors.New("invalid logger configuration")
)
