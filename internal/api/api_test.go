// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tripscore/internal/recommend"
)

// envelope mirrors models.APIResponse with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func review(id, user, item, service, value string) recommend.Review {
	return recommend.Review{
		ID:     id,
		UserID: user,
		ItemID: item,
		Ratings: map[recommend.Dimension]string{
			recommend.DimService: service,
			recommend.DimValue:   value,
		},
	}
}

// newEngine returns an engine over the {service, value} schema, built from
// records unless records is nil.
func newEngine(t *testing.T, records map[string]recommend.Review) *recommend.Engine {
	t.Helper()

	schema, err := recommend.NewSchema(recommend.DimService, recommend.DimValue)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	cfg := recommend.DefaultConfig()
	cfg.Schema = schema

	e, err := recommend.NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if records != nil {
		if err := e.Build(context.Background(), records); err != nil {
			t.Fatalf("Build: %v", err)
		}
	}
	return e
}

// sampleRecords: U1 reviews I1 twice (value supplied once); U2 reviews I2
// without rating value.
func sampleRecords() map[string]recommend.Review {
	return map[string]recommend.Review{
		"A": review("A", "U1", "I1", "4", ""),
		"B": review("B", "U1", "I1", "2", "5"),
		"C": review("C", "U2", "I2", "5", ""),
	}
}

func newTestRouter(t *testing.T, svc ModelService, mw *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}
	return NewRouter(NewHandler(svc), NewChiMiddleware(mw)).SetupChi()
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env envelope
	if strings.HasPrefix(path, "/api/") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s response %q: %v", path, rec.Body.String(), err)
		}
	}
	return rec, env
}

func wantError(t *testing.T, rec *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if env.Success {
		t.Error("success = true on an error response")
	}
	if env.Error == nil {
		t.Fatal("no error object in response")
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
	if env.Error.RequestID == "" {
		t.Error("error carries no request id")
	}
}

// fakeService fails every query with err.
type fakeService struct {
	err error
}

func (f fakeService) Schema() recommend.Schema { return recommend.DefaultSchema() }

func (f fakeService) Status() recommend.BuildStatus { return recommend.BuildStatus{Ready: true} }

func (f fakeService) GetUserModel(string) (recommend.UserModel, error) { return nil, f.err }

func (f fakeService) GetItemModel(string) (recommend.ItemModel, error) { return nil, f.err }

func (f fakeService) GetRecommendationValue(context.Context, string, string) (float64, error) {
	return 0, f.err
}

func (f fakeService) ItemsWithUnratedDimensions() ([]string, error) { return nil, f.err }
