// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/tripscore/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Source    SourceConfig    `koanf:"source"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// SourceConfig locates the review records.
type SourceConfig struct {
	// Path is the review file.
	Path string `koanf:"path"`

	// Delimiter is the single-character field separator.
	Delimiter string `koanf:"delimiter"`

	// Engine selects the reader: "csv" or "duckdb".
	Engine string `koanf:"engine"`
}

// DelimiterRune returns the delimiter as a rune.
// Callers must have validated the config.
func (s SourceConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(s.Delimiter)
	return r
}

// RecommendConfig holds model build and scoring settings.
type RecommendConfig struct {
	Parallel        bool          `koanf:"parallel"`
	BuildTimeout    time.Duration `koanf:"build_timeout"`
	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// EngineConfig converts the recommend section into an engine configuration
// using the default attribute schema.
func (c *Config) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Parallel = c.Recommend.Parallel
	cfg.BuildTimeout = c.Recommend.BuildTimeout
	cfg.Cache = recommend.CacheConfig{
		Enabled:    c.Recommend.CacheEnabled,
		MaxEntries: c.Recommend.CacheMaxEntries,
		TTL:        c.Recommend.CacheTTL,
	}
	return cfg
}

// Load reads configuration from, in increasing priority:
//  1. Built-in defaults
//  2. Config file (CONFIG_PATH, or config.yaml if it exists)
//  3. Environment variables
//
// See LoadWithKoanf for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
