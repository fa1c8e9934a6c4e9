// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tomtom215/tripscore/internal/logging"
	"github.com/tomtom215/tripscore/internal/recommend"
)

// utf8BOM is stripped from the first header cell when present.
const utf8BOM = "\ufeff"

// CSVSource reads reviews from a delimited text file with encoding/csv.
type CSVSource struct {
	Path      string
	Delimiter rune
}

// NewCSVSource creates a CSV source. A zero delimiter selects DefaultDelimiter.
func NewCSVSource(path string, delimiter rune) *CSVSource {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &CSVSource{Path: path, Delimiter: delimiter}
}

// String implements Source.
func (s *CSVSource) String() string {
	return "csv:" + s.Path
}

// Each implements Source.
func (s *CSVSource) Each(ctx context.Context, fn func(Row) error) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", recommend.ErrSourceUnavailable, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Str("path", s.Path).Msg("Error closing review source")
		}
	}()

	return readDelimited(ctx, f, s.Delimiter, fn)
}

// readDelimited streams rows from r. Short rows are padded with empty cells;
// cells beyond the header are ignored.
func readDelimited(ctx context.Context, r io.Reader, delimiter rune, fn func(Row) error) error {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read header: %w", recommend.ErrSourceUnavailable, err)
	}
	header = append([]string(nil), header...)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return fmt.Errorf("%w: row %d: %w", recommend.ErrMalformedRecord, line, err)
			}
			return fmt.Errorf("%w: row %d: %w", recommend.ErrSourceUnavailable, line, err)
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i < len(fields) {
				row[name] = fields[i]
			} else {
				row[name] = ""
			}
		}

		if err := fn(row); err != nil {
			return err
		}
	}
}
