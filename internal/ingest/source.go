// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package ingest

import (
	"context"
	"fmt"
	"strings"
)

// Column names every review source must provide.
const (
	ColumnID     = "id"
	ColumnUserID = "author.id"
	ColumnItemID = "offering_id"
)

// DefaultDelimiter is the field separator of the review dataset.
const DefaultDelimiter = ';'

// Source engines selectable from configuration.
const (
	EngineCSV    = "csv"
	EngineDuckDB = "duckdb"
)

// Row is one data row keyed by header column name.
// Absent and NULL cells are the empty string.
type Row map[string]string

// Source yields the rows of a review source in order.
type Source interface {
	// Each calls fn for every data row. Iteration stops at the first error
	// returned by fn, which Each returns unchanged.
	Each(ctx context.Context, fn func(Row) error) error

	// String names the source for logs.
	String() string
}

// NewSource returns the source for the configured engine.
func NewSource(engine, path string, delimiter rune) (Source, error) {
	switch strings.ToLower(engine) {
	case "", EngineCSV:
		return NewCSVSource(path, delimiter), nil
	case EngineDuckDB:
		return NewDuckDBSource(path, delimiter), nil
	default:
		return nil, fmt.Errorf("unknown source engine %q (expected %s or %s)", engine, EngineCSV, EngineDuckDB)
	}
}
