// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses. These codes are stable and
// can be relied upon by scripts consuming --json output.
const (
	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// Schema errors
	ErrSchemaConflict = "SCHEMA_CONFLICT"
	ErrSchemaInvalid  = "SCHEMA_INVALID"
	ErrTypeNotFound   = "TYPE_NOT_FOUND"

	// Data errors
	ErrFetchFailed = "FETCH_FAILED"
	ErrCacheError  = "CACHE_ERROR"

	// Input errors
	ErrInvalidInput = "INVALID_INPUT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnDanglingRef   = "DANGLING_REFERENCE"
	WarnMalformedRef  = "MALFORMED_REFERENCE"
	WarnSkippedRecord = "SKIPPED_RECORD"
)
