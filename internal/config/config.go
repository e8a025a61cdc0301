// Package config handles global fhirsearch configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultBucket is the public bucket the patient dataset ships in.
const DefaultBucket = "1up-coding-challenge-patients"

// DefaultSuggestionLimit caps ambiguous search results before asking the
// user to refine.
const DefaultSuggestionLimit = 9

// Config represents the global fhirsearch configuration.
type Config struct {
	// Bucket is the S3 bucket holding the resource batch.
	Bucket string `toml:"bucket"`

	// Prefix optionally narrows the bucket listing.
	Prefix string `toml:"prefix"`

	// Region overrides the AWS region from the environment.
	Region string `toml:"region"`

	// CachePath is where the fetched batch is cached locally.
	// Defaults to ~/.cache/fhirsearch/resources.json.
	CachePath string `toml:"cache_path"`

	// SchemaPath optionally points at a schema overlay (schema.yaml)
	// that adds resource types or index paths.
	SchemaPath string `toml:"schema_path"`

	// SuggestionLimit caps the suggestion list for ambiguous searches.
	SuggestionLimit int `toml:"suggestion_limit"`
}

// Load reads the config file and fills in defaults. Resolution order:
// explicit path, $FHIRSEARCH_CONFIG, ~/.config/fhirsearch/config.toml.
// A missing file is not an error; defaults apply.
func Load(explicitPath string) (*Config, error) {
	path := resolvePath(explicitPath)

	cfg := &Config{}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		} else if explicitPath != "" {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func resolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("FHIRSEARCH_CONFIG"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fhirsearch", "config.toml")
}

func (c *Config) applyDefaults() {
	if c.Bucket == "" {
		c.Bucket = DefaultBucket
	}
	if c.CachePath == "" {
		c.CachePath = defaultCachePath()
	}
	if c.SuggestionLimit <= 0 {
		c.SuggestionLimit = DefaultSuggestionLimit
	}
}

func defaultCachePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "fhirsearch", "resources.json")
	}
	return filepath.Join(".cache", "resources.json")
}
