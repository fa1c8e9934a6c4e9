// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Schema is the attribute schema. It is fixed when the program is built;
	// the zero value selects DefaultSchema.
	Schema Schema `json:"-"`

	// Parallel builds the user and item models concurrently.
	// Each builder owns its output until both are done, then one snapshot is
	// published. Sequential building is the reference behavior.
	Parallel bool `json:"parallel"`

	// BuildTimeout bounds a full model build. Zero means no limit.
	BuildTimeout time.Duration `json:"build_timeout"`

	// Cache contains score caching parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains recommendation value caching parameters.
type CacheConfig struct {
	// Enabled turns the score cache on.
	Enabled bool `json:"enabled"`

	// MaxEntries is the maximum number of cached values.
	MaxEntries int `json:"max_entries"`

	// TTL is how long a cached value is kept.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		Schema:       DefaultSchema(),
		Parallel:     false,
		BuildTimeout: 10 * time.Minute,
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 10000,
			TTL:        10 * time.Minute,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BuildTimeout < 0 {
		return fmt.Errorf("build_timeout must be non-negative, got %v", c.BuildTimeout)
	}

	if c.Cache.Enabled {
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	return &Config{
		Schema:       Schema{dims: c.Schema.Dimensions()},
		Parallel:     c.Parallel,
		BuildTimeout: c.BuildTimeout,
		Cache:        c.Cache,
	}
}
