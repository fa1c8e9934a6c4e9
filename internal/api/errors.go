// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/tripscore/internal/recommend"
)

// API error codes.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnknownUser      = "UNKNOWN_USER"
	CodeUnknownItem      = "UNKNOWN_ITEM"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeModelsNotReady   = "MODELS_NOT_READY"
	CodeTimeout          = "TIMEOUT"
	CodeInternal         = "INTERNAL_ERROR"
)

// errorMapping is the client-facing rendering of an engine error.
type errorMapping struct {
	status  int
	code    string
	message string
}

// mapEngineError classifies err. The second result reports whether err is
// unexpected and should be logged.
func mapEngineError(err error) (errorMapping, bool) {
	switch {
	case errors.Is(err, recommend.ErrModelsNotBuilt):
		return errorMapping{http.StatusServiceUnavailable, CodeModelsNotReady, "Models have not been built yet"}, false
	case errors.Is(err, recommend.ErrUnknownUser):
		return errorMapping{http.StatusNotFound, CodeUnknownUser, "No reviews reference this user"}, false
	case errors.Is(err, recommend.ErrUnknownItem):
		return errorMapping{http.StatusNotFound, CodeUnknownItem, "No reviews reference this item"}, false
	case errors.Is(err, context.DeadlineExceeded):
		return errorMapping{http.StatusGatewayTimeout, CodeTimeout, "Request timed out"}, true
	default:
		return errorMapping{http.StatusInternalServerError, CodeInternal, "Internal server error"}, true
	}
}
