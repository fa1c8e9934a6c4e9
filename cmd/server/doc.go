// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

// Package main is the entry point for the Tripscore API server.
//
// Tripscore reads a file of multi-attribute hotel reviews, builds a
// preference model per reviewer and a rating model per reviewed item, and
// serves those models and user/item recommendation values over HTTP.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, config.yaml, environment (Koanf v2)
//  2. Logging: zerolog at the configured level and format
//  3. Models: load the review source and build every model; the server
//     exits if this first build fails
//  4. Supervisor tree: HTTP server, a SIGHUP-triggered rebuild service and
//     a score cache pruner
//
// # Configuration
//
// Common environment variables:
//   - SOURCE_PATH: review file (default: reviews.csv)
//   - SOURCE_DELIMITER: field delimiter (default: ;)
//   - SOURCE_ENGINE: csv or duckdb (default: csv)
//   - RECOMMEND_PARALLEL: build user and item models concurrently
//   - HTTP_HOST, HTTP_PORT: listen address (default: 0.0.0.0:8080)
//   - LOG_LEVEL, LOG_FORMAT: logging
//
// # Signal Handling
//
//   - SIGHUP reloads the review source and rebuilds all models. On failure
//     the previous models keep serving.
//   - SIGINT and SIGTERM shut the server down gracefully.
//
// # Example Usage
//
//	export SOURCE_PATH=/data/reviews.csv
//	./tripscore-server
//	curl localhost:8080/api/v1/users/U1/items/I1/recommendation
package main
