// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Review is one multi-attribute review as read from the review source.
// Reviews are never mutated after ingestion.
type Review struct {
	// ID is the unique review identifier.
	ID string `json:"id"`

	// UserID is the author of the review.
	UserID string `json:"user_id"`

	// ItemID is the reviewed item (offering).
	ItemID string `json:"item_id"`

	// Ratings holds the raw field value per dimension.
	// A missing key or an empty string means no rating was given.
	Ratings map[Dimension]string `json:"ratings,omitempty"`
}

// Supplied reports whether the review gave a rating for the dimension.
// Presence only: the value is not parsed.
func (r *Review) Supplied(d Dimension) bool {
	return r.Ratings[d] != ""
}

// Rating parses the rating for a dimension.
// ok is false when the dimension was not supplied.
func (r *Review) Rating(d Dimension) (value float64, ok bool, err error) {
	raw := r.Ratings[d]
	if raw == "" {
		return 0, false, nil
	}

	value, err = strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, true, fmt.Errorf("%w: review %q: %s=%q is not a number",
			ErrMalformedRecord, r.ID, d, raw)
	}

	return value, true, nil
}

// UserModel maps each dimension to the user's importance for it, in [0, 1].
type UserModel map[Dimension]float64

// Clone returns a deep copy of the model.
func (m UserModel) Clone() UserModel {
	out := make(UserModel, len(m))
	for d, v := range m {
		out[d] = v
	}
	return out
}

// ItemModel maps each dimension to the item's average rating.
// A value of 0 means no review rated the dimension.
type ItemModel map[Dimension]float64

// Clone returns a deep copy of the model.
func (m ItemModel) Clone() ItemModel {
	out := make(ItemModel, len(m))
	for d, v := range m {
		out[d] = v
	}
	return out
}

// BuildStatus describes the current state of the published models.
type BuildStatus struct {
	// Ready indicates a snapshot has been published and queries can be served.
	Ready bool `json:"ready"`

	// IsBuilding indicates a build is in progress.
	IsBuilding bool `json:"is_building"`

	// ModelVersion is the version of the published snapshot (0 before the first build).
	ModelVersion int `json:"model_version"`

	// BuiltAt is when the published snapshot was built.
	BuiltAt time.Time `json:"built_at"`

	// LastBuildDurationMS is how long the last successful build took.
	LastBuildDurationMS int64 `json:"last_build_duration_ms"`

	// LastError contains the last build error, if any.
	LastError string `json:"last_error,omitempty"`

	// ReviewCount is the number of reviews in the published snapshot.
	ReviewCount int `json:"review_count"`

	// UserCount is the number of user models.
	UserCount int `json:"user_count"`

	// ItemCount is the number of item models.
	ItemCount int `json:"item_count"`

	// ScoreCache holds score cache counters; nil when the cache is disabled.
	ScoreCache *ScoreCacheStatus `json:"score_cache,omitempty"`
}

// ScoreCacheStatus reports the recommendation value cache.
type ScoreCacheStatus struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}
