// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/tomtom215/tripscore/internal/recommend"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"U1", "U1"},
		{"user\nforged", "user\\x0aforged"},
		{"a\tb\x7f", "a\\x09b\\x7f"},
		{"hôtel", "hôtel"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapEngineError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		status     int
		code       string
		unexpected bool
	}{
		{"not built", recommend.ErrModelsNotBuilt, http.StatusServiceUnavailable, CodeModelsNotReady, false},
		{"unknown user", fmt.Errorf("%w: %q", recommend.ErrUnknownUser, "U9"), http.StatusNotFound, CodeUnknownUser, false},
		{"unknown item", fmt.Errorf("%w: %q", recommend.ErrUnknownItem, "I9"), http.StatusNotFound, CodeUnknownItem, false},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, CodeTimeout, true},
		{"missing model", fmt.Errorf("score: %w", recommend.ErrMissingModel), http.StatusInternalServerError, CodeInternal, true},
		{"other", errors.New("boom"), http.StatusInternalServerError, CodeInternal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, unexpected := mapEngineError(tt.err)
			if m.status != tt.status || m.code != tt.code || unexpected != tt.unexpected {
				t.Errorf("mapEngineError() = %+v, %v; want %d %s %v", m, unexpected, tt.status, tt.code, tt.unexpected)
			}
		})
	}
}
