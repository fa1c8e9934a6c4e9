// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package models

import (
	"time"

	"github.com/tomtom215/tripscore/internal/recommend"
)

// APIResponse is the envelope of every API response.
//
// Example successful response:
//
//	{
//	  "success": true,
//	  "data": {"user_id": "U1", "item_id": "I1", "value": 3},
//	  "meta": {
//	    "request_id": "6f1c...",
//	    "timestamp": "2026-03-02T12:00:00Z",
//	    "duration_ms": 0
//	  }
//	}
//
// Example error response:
//
//	{
//	  "success": false,
//	  "error": {
//	    "code": "UNKNOWN_USER",
//	    "message": "No reviews reference this user",
//	    "request_id": "6f1c..."
//	  },
//	  "meta": {"request_id": "6f1c...", "timestamp": "2026-03-02T12:00:00Z", "duration_ms": 0}
//	}
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    Meta      `json:"meta"`
}

// Meta carries request tracing and timing information.
type Meta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMS int64     `json:"duration_ms"`
}

// APIError describes a failed request.
//
// Error codes:
//   - VALIDATION_ERROR: malformed user or item id (400)
//   - UNKNOWN_USER: no review references the user (404)
//   - UNKNOWN_ITEM: no review references the item (404)
//   - NOT_FOUND: no such route (404)
//   - METHOD_NOT_ALLOWED: route exists for another method (405)
//   - RATE_LIMIT_EXCEEDED: too many requests (429)
//   - MODELS_NOT_READY: no model build has completed yet (503)
//   - INTERNAL_ERROR: anything else (500)
type APIError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	RequestID string         `json:"request_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// UserModelResponse is a user's attention ratio per dimension.
type UserModelResponse struct {
	UserID string              `json:"user_id"`
	Model  recommend.UserModel `json:"model"`
}

// ItemModelResponse is an item's average rating per dimension.
type ItemModelResponse struct {
	ItemID string              `json:"item_id"`
	Model  recommend.ItemModel `json:"model"`
}

// RecommendationResponse is the score of an item for a user.
type RecommendationResponse struct {
	UserID string  `json:"user_id"`
	ItemID string  `json:"item_id"`
	Value  float64 `json:"value"`
}

// SchemaResponse lists the rating dimensions in schema order.
type SchemaResponse struct {
	Dimensions []recommend.Dimension `json:"dimensions"`
	Fields     []string              `json:"fields"`
}

// UnratedItemsResponse lists items with at least one unrated dimension.
type UnratedItemsResponse struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

// HealthStatus reports process health.
type HealthStatus struct {
	Status       string  `json:"status"`
	Ready        bool    `json:"ready"`
	ModelVersion int     `json:"model_version"`
	Uptime       float64 `json:"uptime_seconds"`
}
