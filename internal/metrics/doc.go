// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Overview

The package provides metrics for:
  - Review ingestion (rows read, reviews kept, duplicates, duration)
  - Model builds (duration per model kind, published model counts, failures)
  - Recommendation value requests and score cache efficiency
  - HTTP request latency and throughput

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Ingestion:

	tripscore_ingest_rows_total                 Rows read from the review source
	tripscore_ingest_duplicates_total           Rows that replaced an earlier review id
	tripscore_ingest_duration_seconds           Duration of a full load
	tripscore_ingest_errors_total{kind}         Failed loads by error kind

Models:

	tripscore_model_build_duration_seconds{model}  Build duration (user, item, total)
	tripscore_models_published{kind}               Models in the published snapshot
	tripscore_model_version                        Version of the published snapshot
	tripscore_model_build_failures_total           Failed builds

Scoring:

	tripscore_recommendation_requests_total{result}  ok, unknown_user, unknown_item, not_ready, error
	tripscore_score_cache_hits_total
	tripscore_score_cache_misses_total

API:

	api_requests_total{method,endpoint,status_code}
	api_request_duration_seconds{method,endpoint}
	api_active_requests

# Thread Safety

All collectors are registered once at package init through promauto and are
safe for concurrent use.
*/
package metrics
