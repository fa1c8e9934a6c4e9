// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// UnratedValue is the item model value of a dimension that no review rated.
//
// It cannot be told apart from a real average of 0. Scores depend on this
// value, so it is kept as a plain number rather than an "unknown" marker.
const UnratedValue = 0.0

// BuildItemModels computes an ItemModel for every item referenced by records.
//
// The value of a dimension is the mean of the ratings supplied for it across
// the item's reviews, rounded to one decimal place, or UnratedValue when no
// review rated it. A supplied rating that is not a number fails the whole
// build with ErrMalformedRecord.
func BuildItemModels(schema Schema, records map[string]Review) (map[string]ItemModel, error) {
	values := make(map[string][][]float64)

	for _, review := range records {
		perDim, ok := values[review.ItemID]
		if !ok {
			perDim = make([][]float64, schema.Len())
			values[review.ItemID] = perDim
		}

		for i, d := range schema.dims {
			v, supplied, err := review.Rating(d)
			if err != nil {
				return nil, err
			}
			if supplied {
				perDim[i] = append(perDim[i], v)
			}
		}
	}

	models := make(map[string]ItemModel, len(values))
	for itemID, perDim := range values {
		model := make(ItemModel, schema.Len())
		for i, d := range schema.dims {
			model[d] = averageRating(perDim[i])
		}
		models[itemID] = model
	}

	return models, nil
}

// averageRating returns the rounded mean of supplied ratings.
// Values are sorted first so the floating point sum, and therefore the mean,
// is the same for any ordering of the input reviews.
func averageRating(supplied []float64) float64 {
	if len(supplied) == 0 {
		return UnratedValue
	}
	sort.Float64s(supplied)
	return roundTenth(stat.Mean(supplied, nil))
}
