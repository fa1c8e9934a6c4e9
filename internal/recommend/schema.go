// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

import (
	"fmt"
	"strings"
)

// Dimension is one rating attribute tracked by the schema.
type Dimension string

// Rating dimensions of the default schema, in schema order.
const (
	DimService      Dimension = "service"
	DimCleanliness  Dimension = "cleanliness"
	DimValue        Dimension = "value"
	DimLocation     Dimension = "location"
	DimSleepQuality Dimension = "sleep_quality"
	DimRooms        Dimension = "rooms"
)

// RatingFieldPrefix is prepended to a dimension name to form its column name
// in the review source.
const RatingFieldPrefix = "ratings."

// Schema is the fixed, ordered set of rating dimensions.
// The zero value has no dimensions; use DefaultSchema or NewSchema.
type Schema struct {
	dims []Dimension
}

// DefaultSchema returns the six hotel rating dimensions.
func DefaultSchema() Schema {
	return Schema{dims: []Dimension{
		DimService,
		DimCleanliness,
		DimValue,
		DimLocation,
		DimSleepQuality,
		DimRooms,
	}}
}

// NewSchema creates a schema from an ordered list of dimensions.
// Dimensions must be non-empty and unique.
func NewSchema(dims ...Dimension) (Schema, error) {
	if len(dims) == 0 {
		return Schema{}, fmt.Errorf("schema needs at least one dimension")
	}

	seen := make(map[Dimension]struct{}, len(dims))
	out := make([]Dimension, 0, len(dims))
	for _, d := range dims {
		if strings.TrimSpace(string(d)) == "" {
			return Schema{}, fmt.Errorf("schema dimension name is empty")
		}
		if _, dup := seen[d]; dup {
			return Schema{}, fmt.Errorf("duplicate schema dimension %q", d)
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	return Schema{dims: out}, nil
}

// Dimensions returns the schema dimensions in order.
func (s Schema) Dimensions() []Dimension {
	out := make([]Dimension, len(s.dims))
	copy(out, s.dims)
	return out
}

// Len returns the number of dimensions.
func (s Schema) Len() int {
	return len(s.dims)
}

// FieldName maps a dimension to its column name in the review source.
func (s Schema) FieldName(d Dimension) string {
	return RatingFieldPrefix + string(d)
}
