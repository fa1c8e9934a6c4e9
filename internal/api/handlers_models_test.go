// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package api

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tripscore/internal/models"
)

func TestUserModel(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, newEngine(t, sampleRecords()), nil)

	rec, env := get(t, h, "/api/v1/users/U1/model")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !env.Success {
		t.Error("success = false")
	}
	if env.Meta.RequestID == "" || env.Meta.RequestID != rec.Header().Get("X-Request-ID") {
		t.Errorf("meta.request_id = %q, header = %q", env.Meta.RequestID, rec.Header().Get("X-Request-ID"))
	}

	var got struct {
		UserID string             `json:"user_id"`
		Model  map[string]float64 `json:"model"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	want := map[string]float64{"service": 1.0, "value": 0.5}
	if got.UserID != "U1" || !reflect.DeepEqual(got.Model, want) {
		t.Errorf("data = %+v, want U1 %v", got, want)
	}
}

func TestItemModel(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, newEngine(t, sampleRecords()), nil)

	tests := []struct {
		id   string
		want map[string]float64
	}{
		{"I1", map[string]float64{"service": 3.0, "value": 5.0}},
		{"I2", map[string]float64{"service": 5.0, "value": 0}},
	}

	for _, tt := range tests {
		rec, env := get(t, h, "/api/v1/items/"+tt.id+"/model")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", tt.id, rec.Code)
		}
		var got struct {
			ItemID string             `json:"item_id"`
			Model  map[string]float64 `json:"model"`
		}
		if err := json.Unmarshal(env.Data, &got); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if got.ItemID != tt.id || !reflect.DeepEqual(got.Model, tt.want) {
			t.Errorf("data = %+v, want %s %v", got, tt.id, tt.want)
		}
	}
}

func TestRecommendation(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, newEngine(t, sampleRecords()), nil)

	rec, env := get(t, h, "/api/v1/users/U1/items/I1/recommendation")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got models.RecommendationResponse
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	want := models.RecommendationResponse{UserID: "U1", ItemID: "I1", Value: 3.0}
	if got != want {
		t.Errorf("data = %+v, want %+v", got, want)
	}

	// Served again from the score cache
	_, env2 := get(t, h, "/api/v1/users/U1/items/I1/recommendation")
	var again models.RecommendationResponse
	if err := json.Unmarshal(env2.Data, &again); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if again != want {
		t.Errorf("cached data = %+v, want %+v", again, want)
	}
}

func TestModelEndpoints_Errors(t *testing.T) {
	t.Parallel()
	built := newTestRouter(t, newEngine(t, sampleRecords()), nil)
	unbuilt := newTestRouter(t, newEngine(t, nil), nil)
	longID := strings.Repeat("x", 129)

	tests := []struct {
		name   string
		router http.Handler
		path   string
		status int
		code   string
	}{
		{"unknown user model", built, "/api/v1/users/nobody/model", http.StatusNotFound, CodeUnknownUser},
		{"unknown item model", built, "/api/v1/items/nothing/model", http.StatusNotFound, CodeUnknownItem},
		{"recommendation unknown user", built, "/api/v1/users/nobody/items/I1/recommendation", http.StatusNotFound, CodeUnknownUser},
		{"recommendation unknown item", built, "/api/v1/users/U1/items/nothing/recommendation", http.StatusNotFound, CodeUnknownItem},
		{"user id too long", built, "/api/v1/users/" + longID + "/model", http.StatusBadRequest, CodeValidation},
		{"item id too long", built, "/api/v1/users/U1/items/" + longID + "/recommendation", http.StatusBadRequest, CodeValidation},
		{"padded user id", built, "/api/v1/users/%20U1/model", http.StatusBadRequest, CodeValidation},
		{"user model before build", unbuilt, "/api/v1/users/U1/model", http.StatusServiceUnavailable, CodeModelsNotReady},
		{"item model before build", unbuilt, "/api/v1/items/I1/model", http.StatusServiceUnavailable, CodeModelsNotReady},
		{"recommendation before build", unbuilt, "/api/v1/users/U1/items/I1/recommendation", http.StatusServiceUnavailable, CodeModelsNotReady},
		{"unrated before build", unbuilt, "/api/v1/items/unrated", http.StatusServiceUnavailable, CodeModelsNotReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := get(t, tt.router, tt.path)
			wantError(t, rec, env, tt.status, tt.code)
		})
	}
}

func TestModelEndpoints_InternalError(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, fakeService{err: errors.New("snapshot corrupted")}, nil)

	rec, env := get(t, h, "/api/v1/users/U1/items/I1/recommendation")
	wantError(t, rec, env, http.StatusInternalServerError, CodeInternal)
	if strings.Contains(rec.Body.String(), "snapshot corrupted") {
		t.Error("internal error message leaked to the client")
	}
}

func TestUnratedItems(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, newEngine(t, sampleRecords()), nil)

	rec, env := get(t, h, "/api/v1/items/unrated")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got models.UnratedItemsResponse
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.Count != 1 || !reflect.DeepEqual(got.Items, []string{"I2"}) {
		t.Errorf("data = %+v, want [I2]", got)
	}
}

func TestSchema(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, newEngine(t, nil), nil)

	rec, env := get(t, h, "/api/v1/schema")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		Dimensions []string `json:"dimensions"`
		Fields     []string `json:"fields"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !reflect.DeepEqual(got.Dimensions, []string{"service", "value"}) {
		t.Errorf("dimensions = %v", got.Dimensions)
	}
	if !reflect.DeepEqual(got.Fields, []string{"ratings.service", "ratings.value"}) {
		t.Errorf("fields = %v", got.Fields)
	}
}
