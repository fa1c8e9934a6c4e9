// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	// DuckDB driver - reads the review file with read_csv
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/tripscore/internal/logging"
	"github.com/tomtom215/tripscore/internal/recommend"
)

// DuckDBSource reads reviews from a delimited text file through an in-memory
// DuckDB connection. Every column is read as text so ratings are parsed by
// the item builder exactly as with CSVSource.
type DuckDBSource struct {
	Path      string
	Delimiter rune
}

// NewDuckDBSource creates a DuckDB source. A zero delimiter selects DefaultDelimiter.
func NewDuckDBSource(path string, delimiter rune) *DuckDBSource {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &DuckDBSource{Path: path, Delimiter: delimiter}
}

// String implements Source.
func (s *DuckDBSource) String() string {
	return "duckdb:" + s.Path
}

// Each implements Source.
func (s *DuckDBSource) Each(ctx context.Context, fn func(Row) error) error {
	// read_csv on a missing file reports a generic IO error; check first so
	// the caller sees the path problem directly.
	if _, err := os.Stat(s.Path); err != nil {
		return fmt.Errorf("%w: %w", recommend.ErrSourceUnavailable, err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return fmt.Errorf("%w: open duckdb: %w", recommend.ErrSourceUnavailable, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Error closing DuckDB connection")
		}
	}()

	rows, err := db.QueryContext(ctx, s.query())
	if err != nil {
		return fmt.Errorf("%w: read_csv: %w", recommend.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("%w: columns: %w", recommend.ErrSourceUnavailable, err)
	}

	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("%w: scan row: %w", recommend.ErrSourceUnavailable, err)
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			row[name] = values[i].String // NULL scans as ""
		}

		if err := fn(row); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: iterate rows: %w", recommend.ErrSourceUnavailable, err)
	}
	return nil
}

// query builds the read_csv statement. Table function arguments cannot be
// bound parameters, so the path and delimiter are quoted as SQL literals.
func (s *DuckDBSource) query() string {
	return fmt.Sprintf(
		"SELECT * FROM read_csv(%s, delim = %s, header = true, all_varchar = true, null_padding = true)",
		quoteLiteral(s.Path), quoteLiteral(string(s.Delimiter)),
	)
}

// quoteLiteral renders v as a single-quoted SQL string literal.
func quoteLiteral(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
