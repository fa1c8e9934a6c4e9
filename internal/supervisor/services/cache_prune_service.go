// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// PruneFunc drops expired cache entries and returns how many were removed.
type PruneFunc func() int

// CachePruneService calls a PruneFunc on a fixed interval so that cached
// values nobody reads again do not hold memory until the next rebuild.
type CachePruneService struct {
	prune    PruneFunc
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCachePruneService creates the service. A non-positive interval
// defaults to one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCachePruneService(prune PruneFunc, interval time.Duration, logger zerolog.Logger) *CachePruneService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CachePruneService{
		prune:    prune,
		interval: interval,
		logger:   logger.With().Str("service", "cache-prune").Logger(),
		name:     "cache-prune-service",
	}
}

// Serve implements suture.Service.
func (s *CachePruneService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.prune(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired cache entries pruned")
			}
		}
	}
}

// String names the service in supervisor logs.
func (s *CachePruneService) String() string {
	return s.name
}
