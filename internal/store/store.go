// Package store acquires the raw resource batch. The canonical source is
// an S3 bucket of newline-delimited JSON objects; a local cache file
// avoids re-fetching on every run.
package store

import "context"

// Store hands the core a batch of raw JSON resources. Implementations
// do the I/O; the caller owns materialization.
type Store interface {
	Load(ctx context.Context) ([]map[string]any, error)
}
