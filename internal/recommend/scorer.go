// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

import "fmt"

// Score combines a user model and an item model into a recommendation value.
//
// Each dimension contributes importance*average + (1-importance); the result
// is the mean contribution rounded to one decimal place. Both models must
// hold an entry for every schema dimension, otherwise ErrMissingModel is
// returned. No clamping is applied.
//
// Contributions are added one at a time in schema order. Values that land
// near a rounding tie (x.x5) depend on that order.
func Score(schema Schema, user UserModel, item ItemModel) (float64, error) {
	if schema.Len() == 0 {
		return 0, fmt.Errorf("%w: schema has no dimensions", ErrMissingModel)
	}

	total := 0.0
	for _, d := range schema.dims {
		importance, ok := user[d]
		if !ok {
			return 0, fmt.Errorf("%w: user model has no %q entry", ErrMissingModel, d)
		}
		average, ok := item[d]
		if !ok {
			return 0, fmt.Errorf("%w: item model has no %q entry", ErrMissingModel, d)
		}
		// explicit conversion keeps the product from being fused into an FMA
		total += float64(importance*average) + (1 - importance)
	}

	return roundTenth(total / float64(schema.Len())), nil
}
