package store

import "errors"

// ErrJournalDisabled is returned by the no-op journal when no DSN is
// configured.
var ErrJournalDisabled = errors.New("deletion journal is disabled")

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRows         = errors.New("failed to scan journal rows")
	ErrEncodingMetadata     = errors.New("failed to encode document metadata")
)
