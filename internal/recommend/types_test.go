// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

import (
	"errors"
	"testing"
)

func TestNewSchema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dims      []Dimension
		wantError bool
	}{
		{name: "single dimension", dims: []Dimension{DimService}},
		{name: "two dimensions", dims: []Dimension{DimService, DimValue}},
		{name: "empty", dims: nil, wantError: true},
		{name: "blank name", dims: []Dimension{DimService, " "}, wantError: true},
		{name: "duplicate", dims: []Dimension{DimValue, DimValue}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := NewSchema(tt.dims...)
			if (err != nil) != tt.wantError {
				t.Fatalf("NewSchema() error = %v, wantError %v", err, tt.wantError)
			}
			if err == nil && s.Len() != len(tt.dims) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(tt.dims))
			}
		})
	}
}

func TestDefaultSchema(t *testing.T) {
	t.Parallel()

	s := DefaultSchema()
	want := []Dimension{DimService, DimCleanliness, DimValue, DimLocation, DimSleepQuality, DimRooms}

	got := s.Dimensions()
	if len(got) != len(want) {
		t.Fatalf("Dimensions() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dimensions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Returned slice is a copy
	got[0] = "mutated"
	if s.Dimensions()[0] != DimService {
		t.Error("mutating Dimensions() result changed the schema")
	}

	if f := s.FieldName(DimSleepQuality); f != "ratings.sleep_quality" {
		t.Errorf("FieldName() = %q, want ratings.sleep_quality", f)
	}
}

func TestReview_Rating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		want      float64
		wantOK    bool
		wantError bool
	}{
		{name: "integer", raw: "4", want: 4, wantOK: true},
		{name: "decimal", raw: "3.5", want: 3.5, wantOK: true},
		{name: "padded", raw: " 5 ", want: 5, wantOK: true},
		{name: "zero", raw: "0", want: 0, wantOK: true},
		{name: "absent", raw: "", wantOK: false},
		{name: "not a number", raw: "great", wantOK: true, wantError: true},
		{name: "nan", raw: "NaN", wantOK: true, wantError: true},
		{name: "infinity", raw: "Inf", wantOK: true, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Review{ID: "r1", Ratings: map[Dimension]string{DimService: tt.raw}}

			got, ok, err := r.Rating(DimService)
			if tt.wantError {
				if !errors.Is(err, ErrMalformedRecord) {
					t.Fatalf("Rating() error = %v, want ErrMalformedRecord", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Rating() unexpected error: %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("Rating() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Rating() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReview_Supplied(t *testing.T) {
	t.Parallel()

	r := Review{Ratings: map[Dimension]string{DimService: "4", DimValue: ""}}

	if !r.Supplied(DimService) {
		t.Error("service should be supplied")
	}
	if r.Supplied(DimValue) {
		t.Error("empty value should not be supplied")
	}
	if r.Supplied(DimRooms) {
		t.Error("missing key should not be supplied")
	}

	// Presence only: an unparseable value still counts as supplied
	bad := Review{Ratings: map[Dimension]string{DimService: "n/a"}}
	if !bad.Supplied(DimService) {
		t.Error("non-numeric value should count as supplied")
	}
}

func TestModelClone(t *testing.T) {
	t.Parallel()

	u := UserModel{DimService: 0.5}
	uc := u.Clone()
	uc[DimService] = 1
	if u[DimService] != 0.5 {
		t.Error("UserModel.Clone shares storage with the original")
	}

	i := ItemModel{DimService: 4}
	ic := i.Clone()
	ic[DimService] = 1
	if i[DimService] != 4 {
		t.Error("ItemModel.Clone shares storage with the original")
	}
}

func TestRoundTenth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1, 1},
		{0.5, 0.5},
		{1.0 / 3.0, 0.3},
		{2.0 / 3.0, 0.7},
		{0.25, 0.2},
		{0.75, 0.8},
		{0.05, 0.1},
		{0.35, 0.3},
		{3.45, 3.5},
		{4.96, 5.0},
	}

	for _, tt := range tests {
		if got := roundTenth(tt.in); got != tt.want {
			t.Errorf("roundTenth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
