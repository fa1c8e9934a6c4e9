// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

// Package logging provides the process-wide zerolog logger for Tripscore.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("reviews", n).Msg("Reviews loaded")
//	logging.Error().Err(err).Msg("Model build failed")
//
// Request-scoped logging picks up the request and correlation ids stored in
// the context by the API middleware:
//
//	logging.Ctx(ctx).Warn().Str("user_id", id).Msg("Unknown user")
//
// Components that take a zerolog.Logger by value (the recommend engine, the
// supervisor) get one from WithComponent.
//
// # slog bridge
//
// SlogHandler routes log/slog records into zerolog so libraries such as
// sutureslog log through the same output.
//
// # Configuration
//
// Environment Variables (read by the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// Always terminate event chains with .Msg() or .Send(); an unterminated
// event is never written.
package logging
