package adapter

import "errors"

// Transport errors shared by every backend.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("service unavailable")
)

// ErrUnsupportedBackend is returned by [NewVectorStoreAdapter] for an unknown
// backend name.
var ErrUnsupportedBackend = errors.New("unsupported backend")
