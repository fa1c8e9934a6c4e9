// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tripscore/internal/config"
	"github.com/tomtom215/tripscore/internal/ingest"
	"github.com/tomtom215/tripscore/internal/logging"
	"github.com/tomtom215/tripscore/internal/recommend"
)

// RecommendComponents holds the engine and the source it is built from.
type RecommendComponents struct {
	Engine *recommend.Engine
	Source ingest.Source
	logger zerolog.Logger
}

// initRecommend creates the review source and the engine. Nothing is loaded
// until Rebuild is called.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*RecommendComponents, error) {
	src, err := ingest.NewSource(cfg.Source.Engine, cfg.Source.Path, cfg.Source.DelimiterRune())
	if err != nil {
		return nil, fmt.Errorf("create review source: %w", err)
	}

	engine, err := recommend.NewEngine(cfg.EngineConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	logger.Info().
		Str("source", src.String()).
		Bool("parallel", cfg.Recommend.Parallel).
		Bool("cache", cfg.Recommend.CacheEnabled).
		Msg("Recommendation engine initialized")

	return &RecommendComponents{Engine: engine, Source: src, logger: logger}, nil
}

// Rebuild loads every review from the source and rebuilds all models.
// On error the engine keeps its previous models.
func (c *RecommendComponents) Rebuild(ctx context.Context) error {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	log := c.logger.With().Str("correlation_id", logging.CorrelationIDFromContext(ctx)).Logger()

	// the loader logs the row and review counts under the same correlation id
	records, err := ingest.Load(ctx, c.Source, c.Engine.Schema())
	if err != nil {
		return err
	}

	if err := c.Engine.Build(ctx, records); err != nil {
		return err
	}

	status := c.Engine.Status()
	log.Info().
		Int("version", status.ModelVersion).
		Int("users", status.UserCount).
		Int("items", status.ItemCount).
		Msg("Models published")
	return nil
}
