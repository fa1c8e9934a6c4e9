// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package services

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// RebuildFunc reloads the review source and rebuilds every model.
type RebuildFunc func(ctx context.Context) error

// RebuildService rebuilds the models whenever a signal arrives on its
// trigger channel (SIGHUP in cmd/server).
//
// A failed rebuild is logged and the service keeps running: the engine does
// not publish partial results, so the previous models keep serving.
type RebuildService struct {
	rebuild RebuildFunc
	trigger <-chan os.Signal
	timeout time.Duration
	logger  zerolog.Logger
	name    string
}

// NewRebuildService creates the service. A non-positive timeout means no
// limit beyond the supervisor's context.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRebuildService(rebuild RebuildFunc, trigger <-chan os.Signal, timeout time.Duration, logger zerolog.Logger) *RebuildService {
	return &RebuildService{
		rebuild: rebuild,
		trigger: trigger,
		timeout: timeout,
		logger:  logger.With().Str("service", "rebuild").Logger(),
		name:    "rebuild-service",
	}
}

// Serve implements suture.Service.
func (s *RebuildService) Serve(ctx context.Context) error {
	s.logger.Debug().Msg("rebuild service running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case sig, ok := <-s.trigger:
			if !ok {
				// No more triggers; idle until shutdown
				<-ctx.Done()
				return ctx.Err()
			}
			s.logger.Info().Str("signal", sig.String()).Msg("model rebuild requested")
			s.run(ctx)
		}
	}
}

// run performs one rebuild.
func (s *RebuildService) run(ctx context.Context) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.rebuild(ctx); err != nil {
		s.logger.Error().Err(err).Msg("model rebuild failed, keeping previous models")
		return
	}

	s.logger.Info().Dur("duration", time.Since(start)).Msg("model rebuild complete")
}

// String names the service in supervisor logs.
func (s *RebuildService) String() string {
	return s.name
}
