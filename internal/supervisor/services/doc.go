// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

// Package services provides suture.Service wrappers for the server's
// long-running components: the HTTP server, the model rebuild trigger and
// the score cache pruner.
package services
