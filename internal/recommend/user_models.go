// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

// userAccumulator counts one user's reviews and supplied ratings per dimension.
type userAccumulator struct {
	total    int
	supplied []int // indexed like Schema.dims
}

// BuildUserModels computes a UserModel for every user referenced by records.
//
// Importance for a dimension is the fraction of the user's reviews that
// supplied a rating for it, rounded to one decimal place. Only presence is
// checked; values are not parsed. The result does not depend on the
// iteration order of records.
func BuildUserModels(schema Schema, records map[string]Review) map[string]UserModel {
	acc := make(map[string]*userAccumulator)

	for _, review := range records {
		a, ok := acc[review.UserID]
		if !ok {
			a = &userAccumulator{supplied: make([]int, schema.Len())}
			acc[review.UserID] = a
		}

		a.total++
		for i, d := range schema.dims {
			if review.Supplied(d) {
				a.supplied[i]++
			}
		}
	}

	models := make(map[string]UserModel, len(acc))
	for userID, a := range acc {
		model := make(UserModel, schema.Len())
		for i, d := range schema.dims {
			// total >= 1: the user only exists because a review referenced it
			model[d] = roundTenth(float64(a.supplied[i]) / float64(a.total))
		}
		models[userID] = model
	}

	return models
}
