// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tripscore/internal/logging"
	"github.com/tomtom215/tripscore/internal/models"
	"github.com/tomtom215/tripscore/internal/validation"
)

// sanitizeLogValue escapes control characters so ids taken from the URL
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// newMeta builds response metadata for r.
func newMeta(r *http.Request, start time.Time) models.Meta {
	return models.Meta{
		RequestID:  logging.RequestIDFromContext(r.Context()),
		Timestamp:  time.Now().UTC(),
		DurationMS: time.Since(start).Milliseconds(),
	}
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess sends a 200 response carrying data.
func respondSuccess(w http.ResponseWriter, r *http.Request, start time.Time, data any) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Data:    data,
		Meta:    newMeta(r, start),
	})
}

// respondError sends an error response. A non-nil err is logged, never sent.
func respondError(w http.ResponseWriter, r *http.Request, start time.Time, status int, code, message string, err error) {
	meta := newMeta(r, start)
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", code).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Success: false,
		Error: &models.APIError{
			Code:      code,
			Message:   message,
			RequestID: meta.RequestID,
		},
		Meta: meta,
	})
}

// respondEngineError renders an error returned by the model service.
func respondEngineError(w http.ResponseWriter, r *http.Request, start time.Time, err error) {
	m, unexpected := mapEngineError(err)
	var logged error
	if unexpected {
		logged = err
	}
	respondError(w, r, start, m.status, m.code, m.message, logged)
}

// validateRequest validates a request struct. On failure it writes a 400
// response and returns false.
func validateRequest(w http.ResponseWriter, r *http.Request, start time.Time, req any) bool {
	verr := validation.ValidateStruct(req)
	if verr == nil {
		return true
	}

	apiErr := verr.ToAPIError()
	meta := newMeta(r, start)
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Success: false,
		Error: &models.APIError{
			Code:      apiErr.Code,
			Message:   apiErr.Message,
			RequestID: meta.RequestID,
			Details:   apiErr.Details,
		},
		Meta: meta,
	})
	return false
}
