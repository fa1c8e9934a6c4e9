// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/tripscore/internal/logging"
	"github.com/tomtom215/tripscore/internal/metrics"
	"github.com/tomtom215/tripscore/internal/recommend"
)

// LoadStats describes one completed load.
type LoadStats struct {
	Rows       int           `json:"rows"`
	Reviews    int           `json:"reviews"`
	Duplicates int           `json:"duplicates"`
	Duration   time.Duration `json:"duration"`
}

// Load reads every row of src into a map keyed by review id.
func Load(ctx context.Context, src Source, schema recommend.Schema) (map[string]recommend.Review, error) {
	records, _, err := LoadWithStats(ctx, src, schema)
	return records, err
}

// LoadWithStats is Load, also reporting row and duplicate counts.
// Stats are filled in as far as the load got when an error is returned.
func LoadWithStats(ctx context.Context, src Source, schema recommend.Schema) (map[string]recommend.Review, LoadStats, error) {
	start := time.Now()
	records := make(map[string]recommend.Review)
	stats := LoadStats{}

	dims := schema.Dimensions()
	fields := make([]string, len(dims))
	for i, d := range dims {
		fields[i] = schema.FieldName(d)
	}

	err := src.Each(ctx, func(row Row) error {
		stats.Rows++

		review, err := reviewFromRow(row, dims, fields)
		if err != nil {
			return fmt.Errorf("row %d: %w", stats.Rows, err)
		}

		if _, dup := records[review.ID]; dup {
			stats.Duplicates++
			logging.Debug().Str("review_id", review.ID).Int("row", stats.Rows).Msg("Duplicate review id replaces earlier row")
		}
		records[review.ID] = review
		return nil
	})

	stats.Reviews = len(records)
	stats.Duration = time.Since(start)
	metrics.RecordIngest(stats.Duration, stats.Rows, stats.Duplicates, errorKind(err))

	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("source", src.String()).Int("rows", stats.Rows).Msg("Review load failed")
		return nil, stats, fmt.Errorf("load %s: %w", src, err)
	}

	logging.Ctx(ctx).Info().
		Str("source", src.String()).
		Int("rows", stats.Rows).
		Int("reviews", stats.Reviews).
		Int("duplicates", stats.Duplicates).
		Dur("duration", stats.Duration).
		Msg("Reviews loaded")

	return records, stats, nil
}

// reviewFromRow maps a row to a Review. Only schema dimensions are kept.
func reviewFromRow(row Row, dims []recommend.Dimension, fields []string) (recommend.Review, error) {
	review := recommend.Review{
		ID:      row[ColumnID],
		UserID:  row[ColumnUserID],
		ItemID:  row[ColumnItemID],
		Ratings: make(map[recommend.Dimension]string, len(dims)),
	}

	switch {
	case review.ID == "":
		return review, fmt.Errorf("%w: missing %s", recommend.ErrMalformedRecord, ColumnID)
	case review.UserID == "":
		return review, fmt.Errorf("%w: review %q: missing %s", recommend.ErrMalformedRecord, review.ID, ColumnUserID)
	case review.ItemID == "":
		return review, fmt.Errorf("%w: review %q: missing %s", recommend.ErrMalformedRecord, review.ID, ColumnItemID)
	}

	for i, d := range dims {
		if v := row[fields[i]]; v != "" {
			review.Ratings[d] = v
		}
	}

	return review, nil
}

// errorKind labels a load error for metrics.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, recommend.ErrSourceUnavailable):
		return "source_unavailable"
	case errors.Is(err, recommend.ErrMalformedRecord):
		return "malformed_record"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}
