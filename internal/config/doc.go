// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

/*
Package config provides centralized configuration management for Tripscore.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, or the first of DefaultConfigPaths found
 3. Environment variables

# Environment Variables

Review source (SourceConfig):
  - SOURCE_PATH: Review file path (default: reviews.csv)
  - SOURCE_DELIMITER: Field separator, one character (default: ;)
  - SOURCE_ENGINE: Reader, csv or duckdb (default: csv)

Model building (RecommendConfig):
  - RECOMMEND_PARALLEL: Build user and item models concurrently (default: false)
  - RECOMMEND_BUILD_TIMEOUT: Upper bound for a build (default: 10m)
  - RECOMMEND_CACHE_ENABLED: Cache computed recommendation values (default: true)
  - RECOMMEND_CACHE_MAX_ENTRIES: Score cache capacity (default: 10000)
  - RECOMMEND_CACHE_TTL: Score cache entry lifetime (default: 10m)

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown timeout (default: 10s)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file and line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    return err
	}
	engine, err := recommend.NewEngine(cfg.EngineConfig(), logger)

Config is immutable after Load and safe for concurrent reads.
*/
package config
