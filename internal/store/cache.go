package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileStore reads a previously cached batch: a single JSON array of raw
// resources.
type FileStore struct {
	Path string
}

// Load reads and decodes the cache file.
func (f *FileStore) Load(_ context.Context) ([]map[string]any, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache %s: %w", f.Path, err)
	}

	var resources []map[string]any
	if err := json.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("failed to parse cache %s: %w", f.Path, err)
	}
	return resources, nil
}

// CachingStore serves the batch from a local cache file when present,
// and otherwise fetches from the wrapped store and writes the cache
// through. DropCache forces a re-fetch.
type CachingStore struct {
	Inner     Store
	Path      string
	DropCache bool
	Log       zerolog.Logger
}

// Load returns the cached batch or fetches and caches a fresh one.
func (c *CachingStore) Load(ctx context.Context) ([]map[string]any, error) {
	if !c.DropCache {
		if _, err := os.Stat(c.Path); err == nil {
			c.Log.Debug().Str("path", c.Path).Msg("loading batch from cache")
			return (&FileStore{Path: c.Path}).Load(ctx)
		}
	}

	resources, err := c.Inner.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.write(resources); err != nil {
		// A failed cache write is not fatal; the batch is already in hand.
		c.Log.Warn().Err(err).Str("path", c.Path).Msg("failed to write cache")
	}
	return resources, nil
}

func (c *CachingStore) write(resources []map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(resources, "", "  ")
	if err != nil {
		return err
	}

	// Write to a temp file and rename so a crash never leaves a torn cache.
	tmp := c.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.Path)
}
