// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

import "errors"

var (
	// ErrSourceUnavailable indicates the review source could not be opened or read.
	ErrSourceUnavailable = errors.New("review source unavailable")

	// ErrMalformedRecord indicates a review row is missing a required field
	// or carries a rating that is not a number.
	ErrMalformedRecord = errors.New("malformed review record")

	// ErrUnknownUser indicates no review referenced the requested user.
	ErrUnknownUser = errors.New("unknown user")

	// ErrUnknownItem indicates no review referenced the requested item.
	ErrUnknownItem = errors.New("unknown item")

	// ErrMissingModel indicates a model lacks an entry for a schema dimension.
	ErrMissingModel = errors.New("model missing dimension")

	// ErrModelsNotBuilt is returned by accessors before the first successful build.
	ErrModelsNotBuilt = errors.New("models not built")

	// ErrBuildInProgress is returned by Build while another build is running.
	ErrBuildInProgress = errors.New("build already in progress")
)
