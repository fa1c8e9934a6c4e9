// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package ingest

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tomtom215/tripscore/internal/recommend"
)

func TestQuoteLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"reviews.csv", "'reviews.csv'"},
		{"o'brien.csv", "'o''brien.csv'"},
		{";", "';'"},
	}

	for _, tt := range tests {
		if got := quoteLiteral(tt.in); got != tt.want {
			t.Errorf("quoteLiteral(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDuckDBSource_MissingFile(t *testing.T) {
	t.Parallel()

	src := NewDuckDBSource(filepath.Join(t.TempDir(), "missing.csv"), 0)
	err := src.Each(context.Background(), func(Row) error { return nil })
	if !errors.Is(err, recommend.ErrSourceUnavailable) {
		t.Errorf("error = %v, want ErrSourceUnavailable", err)
	}
}

func TestDuckDBSource_MatchesCSVSource(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DuckDB test in short mode")
	}

	path := writeFile(t, "reviews.csv", sampleReviews)
	schema := recommend.DefaultSchema()

	fromCSV, err := Load(context.Background(), NewCSVSource(path, ';'), schema)
	if err != nil {
		t.Fatalf("Load csv: %v", err)
	}
	fromDuckDB, err := Load(context.Background(), NewDuckDBSource(path, ';'), schema)
	if err != nil {
		t.Fatalf("Load duckdb: %v", err)
	}

	if !reflect.DeepEqual(fromCSV, fromDuckDB) {
		t.Errorf("DuckDB records differ from CSV records:\n csv:    %v\n duckdb: %v", fromCSV, fromDuckDB)
	}
}

func TestDuckDBSource_QuotedPath(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DuckDB test in short mode")
	}

	path := writeFile(t, "guest's reviews.csv", sampleReviews)
	rows := collect(t, NewDuckDBSource(path, ';'))
	if len(rows) != 3 {
		t.Errorf("got %d rows, want 3", len(rows))
	}
}
