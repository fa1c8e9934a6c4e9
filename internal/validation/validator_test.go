// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one non-nil instance")
	}
}

func TestValidateStruct_RecommendationRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       RecommendationRequest
		wantField string
		wantTag   string
	}{
		{name: "valid", req: RecommendationRequest{UserID: "U1", ItemID: "I1"}},
		{name: "ids with inner spaces", req: RecommendationRequest{UserID: "user 1", ItemID: "hotel 93466"}},
		{name: "max length", req: RecommendationRequest{UserID: strings.Repeat("u", MaxIDLength), ItemID: "I1"}},
		{name: "missing user", req: RecommendationRequest{ItemID: "I1"}, wantField: "user_id", wantTag: "required"},
		{name: "missing item", req: RecommendationRequest{UserID: "U1"}, wantField: "item_id", wantTag: "required"},
		{name: "too long", req: RecommendationRequest{UserID: "U1", ItemID: strings.Repeat("i", MaxIDLength+1)}, wantField: "item_id", wantTag: "max"},
		{name: "padded", req: RecommendationRequest{UserID: " U1", ItemID: "I1"}, wantField: "user_id", wantTag: "modelid"},
		{name: "blank", req: RecommendationRequest{UserID: "   ", ItemID: "I1"}, wantField: "user_id", wantTag: "modelid"},
		{name: "control character", req: RecommendationRequest{UserID: "U1", ItemID: "I\x001"}, wantField: "item_id", wantTag: "modelid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(verr.Fields) != 1 {
				t.Fatalf("got %d field errors, want 1: %v", len(verr.Fields), verr)
			}
			if f := verr.Fields[0]; f.Field != tt.wantField || f.Tag != tt.wantTag {
				t.Errorf("field error = %s/%s, want %s/%s", f.Field, f.Tag, tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_ModelRequests(t *testing.T) {
	if verr := ValidateStruct(&UserModelRequest{UserID: "U1"}); verr != nil {
		t.Errorf("UserModelRequest: %v", verr)
	}
	if verr := ValidateStruct(&ItemModelRequest{ItemID: "I1"}); verr != nil {
		t.Errorf("ItemModelRequest: %v", verr)
	}
	if verr := ValidateStruct(&UserModelRequest{}); verr == nil {
		t.Error("empty UserModelRequest passed validation")
	}
	if verr := ValidateStruct(&ItemModelRequest{ItemID: strings.Repeat("x", 200)}); verr == nil {
		t.Error("long ItemModelRequest passed validation")
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		verr := ValidateStruct(&UserModelRequest{})
		apiErr := verr.ToAPIError()
		if apiErr.Code != ErrorCode {
			t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
		}
		if apiErr.Message != "user_id is required" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "user_id" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple fields", func(t *testing.T) {
		verr := ValidateStruct(&RecommendationRequest{})
		apiErr := verr.ToAPIError()
		if !strings.Contains(apiErr.Message, "user_id is required") ||
			!strings.Contains(apiErr.Message, "item_id is required") {
			t.Errorf("Message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]any)
		if !ok || len(fields) != 2 {
			t.Errorf("Details[fields] = %v", apiErr.Details["fields"])
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
			t.Errorf("ToAPIError() = %+v", apiErr)
		}
	})
}

func TestTranslateError_MaxMessage(t *testing.T) {
	verr := ValidateStruct(&ItemModelRequest{ItemID: strings.Repeat("x", MaxIDLength+1)})
	if verr == nil {
		t.Fatal("expected error")
	}
	want := "item_id must be at most 128 characters"
	if verr.Fields[0].Message != want {
		t.Errorf("Message = %q, want %q", verr.Fields[0].Message, want)
	}
}
