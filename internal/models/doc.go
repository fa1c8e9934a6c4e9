// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

/*
Package models defines the JSON structures the Tripscore API writes.

Key Components:

  - APIResponse: envelope wrapping every response (success flag, data,
    error, meta)
  - UserModelResponse, ItemModelResponse: a model keyed by dimension name
  - RecommendationResponse: the value of one (user, item) pair
  - SchemaResponse: the ordered dimensions and their source columns
  - UnratedItemsResponse: items with at least one unrated dimension
  - HealthStatus: liveness and readiness payload

Model maps are keyed by dimension name. Item model values of 0 mean no
review rated that dimension.
*/
package models
