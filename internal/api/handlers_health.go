// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tripscore/internal/models"
)

// HealthLive handles GET /api/v1/health/live. It succeeds whenever the
// process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := h.models.Status()

	respondSuccess(w, r, start, models.HealthStatus{
		Status:       "alive",
		Ready:        status.Ready,
		ModelVersion: status.ModelVersion,
		Uptime:       time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready. It returns 503 until a model
// build has been published.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := h.models.Status()

	if !status.Ready {
		respondError(w, r, start, http.StatusServiceUnavailable, CodeModelsNotReady, "Models have not been built yet", nil)
		return
	}

	respondSuccess(w, r, start, models.HealthStatus{
		Status:       "ready",
		Ready:        true,
		ModelVersion: status.ModelVersion,
		Uptime:       time.Since(h.startTime).Seconds(),
	})
}

// Status handles GET /api/v1/status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), h.models.Status())
}

// NotFound renders unknown routes in the API envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, time.Now(), http.StatusNotFound, CodeNotFound, "Route not found", nil)
}

// MethodNotAllowed renders wrong-method requests in the API envelope.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, time.Now(), http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
}
