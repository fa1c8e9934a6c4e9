// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

import "strconv"

// roundTenth rounds v to one decimal place.
//
// The exact binary value is rounded, ties to even, so 0.25 becomes 0.2 and
// 0.35 (stored as 0.34999...) becomes 0.3. math.Round(v*10)/10 would give
// 0.3 and 0.4 instead.
func roundTenth(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}
