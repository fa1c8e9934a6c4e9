// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package api

import (
	"context"
	"time"

	"github.com/tomtom215/tripscore/internal/recommend"
)

// queryTimeout bounds a single recommendation value computation.
const queryTimeout = 5 * time.Second

// ModelService is the read side of the recommend engine.
type ModelService interface {
	Schema() recommend.Schema
	Status() recommend.BuildStatus
	GetUserModel(userID string) (recommend.UserModel, error)
	GetItemModel(itemID string) (recommend.ItemModel, error)
	GetRecommendationValue(ctx context.Context, userID, itemID string) (float64, error)
	ItemsWithUnratedDimensions() ([]string, error)
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and validation helpers
//   - handlers_models.go: model and recommendation endpoints
//   - handlers_health.go: health and status endpoints
type Handler struct {
	models    ModelService
	startTime time.Time
}

// NewHandler creates a handler serving queries from models.
func NewHandler(models ModelService) *Handler {
	return &Handler{
		models:    models,
		startTime: time.Now(),
	}
}
