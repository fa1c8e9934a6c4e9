// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ingestion Metrics
	IngestRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripscore_ingest_rows_total",
			Help: "Total number of rows read from the review source",
		},
	)

	IngestDuplicatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripscore_ingest_duplicates_total",
			Help: "Total number of rows whose review id replaced an earlier row",
		},
	)

	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tripscore_ingest_duration_seconds",
			Help:    "Duration of a full review source load in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	IngestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripscore_ingest_errors_total",
			Help: "Total number of failed loads by error kind",
		},
		[]string{"kind"}, // "source_unavailable", "malformed_record", "canceled", "other"
	)

	// Model Build Metrics
	ModelBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripscore_model_build_duration_seconds",
			Help:    "Duration of model builds in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"}, // "user", "item", "total"
	)

	ModelsPublished = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tripscore_models_published",
			Help: "Number of models in the published snapshot",
		},
		[]string{"kind"}, // "user", "item"
	)

	ModelVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tripscore_model_version",
			Help: "Version of the published model snapshot",
		},
	)

	ModelBuildFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripscore_model_build_failures_total",
			Help: "Total number of failed model builds",
		},
	)

	// Scoring Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripscore_recommendation_requests_total",
			Help: "Total number of recommendation value requests by result",
		},
		[]string{"result"},
	)

	ScoreCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripscore_score_cache_hits_total",
			Help: "Total number of recommendation values served from cache",
		},
	)

	ScoreCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripscore_score_cache_misses_total",
			Help: "Total number of recommendation values computed on demand",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordIngest records the outcome of a review source load.
// errKind is empty on success.
func RecordIngest(duration time.Duration, rows, duplicates int, errKind string) {
	IngestDuration.Observe(duration.Seconds())
	IngestRowsTotal.Add(float64(rows))
	IngestDuplicatesTotal.Add(float64(duplicates))
	if errKind != "" {
		IngestErrors.WithLabelValues(errKind).Inc()
	}
}

// RecordModelBuild records the duration of building one kind of model.
func RecordModelBuild(model string, duration time.Duration) {
	ModelBuildDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// RecordModelPublish records the contents of a newly published snapshot.
func RecordModelPublish(version, users, items int) {
	ModelVersion.Set(float64(version))
	ModelsPublished.WithLabelValues("user").Set(float64(users))
	ModelsPublished.WithLabelValues("item").Set(float64(items))
}

// RecordModelBuildFailure counts a build that did not publish.
func RecordModelBuildFailure() {
	ModelBuildFailures.Inc()
}

// RecordRecommendation counts a recommendation value request by result.
func RecordRecommendation(result string) {
	RecommendationRequests.WithLabelValues(result).Inc()
}

// RecordScoreCache records a score cache lookup.
func RecordScoreCache(hit bool) {
	if hit {
		ScoreCacheHits.Inc()
	} else {
		ScoreCacheMisses.Inc()
	}
}

// RecordAPIRequest records API request metrics
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
