// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

// Package validation validates API request parameters with
// go-playground/validator v10.
//
// Handlers fill one of the request types with path parameters and call
// ValidateStruct:
//
//	req := validation.RecommendationRequest{
//	    UserID: chi.URLParam(r, "userID"),
//	    ItemID: chi.URLParam(r, "itemID"),
//	}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code and apiErr.Message
//	}
//
// # Custom tags
//
//   - modelid: non-blank, no control characters, no surrounding whitespace.
//     Ids are matched byte for byte against the ids in the review source,
//     so padded ids would never resolve.
//
// Messages are produced from the failing tag and use the field's json name,
// so they can be shown to API clients as is.
package validation
