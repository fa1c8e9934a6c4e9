// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tripscore/internal/models"
	"github.com/tomtom215/tripscore/internal/validation"
)

// UserModel handles GET /api/v1/users/{userID}/model.
func (h *Handler) UserModel(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := validation.UserModelRequest{UserID: chi.URLParam(r, "userID")}
	if !validateRequest(w, r, start, &req) {
		return
	}

	model, err := h.models.GetUserModel(req.UserID)
	if err != nil {
		respondEngineError(w, r, start, err)
		return
	}

	respondSuccess(w, r, start, models.UserModelResponse{UserID: req.UserID, Model: model})
}

// ItemModel handles GET /api/v1/items/{itemID}/model.
func (h *Handler) ItemModel(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := validation.ItemModelRequest{ItemID: chi.URLParam(r, "itemID")}
	if !validateRequest(w, r, start, &req) {
		return
	}

	model, err := h.models.GetItemModel(req.ItemID)
	if err != nil {
		respondEngineError(w, r, start, err)
		return
	}

	respondSuccess(w, r, start, models.ItemModelResponse{ItemID: req.ItemID, Model: model})
}

// Recommendation handles GET /api/v1/users/{userID}/items/{itemID}/recommendation.
func (h *Handler) Recommendation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := validation.RecommendationRequest{
		UserID: chi.URLParam(r, "userID"),
		ItemID: chi.URLParam(r, "itemID"),
	}
	if !validateRequest(w, r, start, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	value, err := h.models.GetRecommendationValue(ctx, req.UserID, req.ItemID)
	if err != nil {
		respondEngineError(w, r, start, err)
		return
	}

	respondSuccess(w, r, start, models.RecommendationResponse{
		UserID: req.UserID,
		ItemID: req.ItemID,
		Value:  value,
	})
}

// UnratedItems handles GET /api/v1/items/unrated.
func (h *Handler) UnratedItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ids, err := h.models.ItemsWithUnratedDimensions()
	if err != nil {
		respondEngineError(w, r, start, err)
		return
	}

	respondSuccess(w, r, start, models.UnratedItemsResponse{Items: ids, Count: len(ids)})
}

// Schema handles GET /api/v1/schema.
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	schema := h.models.Schema()
	dims := schema.Dimensions()
	fields := make([]string, len(dims))
	for i, d := range dims {
		fields[i] = schema.FieldName(d)
	}

	respondSuccess(w, r, start, models.SchemaResponse{Dimensions: dims, Fields: fields})
}
