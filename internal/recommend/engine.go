// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/tripscore/internal/cache"
	"github.com/tomtom215/tripscore/internal/metrics"
)

// scoreKey identifies a cached recommendation value.
// Including the snapshot version keeps values of an older build from being served.
type scoreKey struct {
	version int
	userID  string
	itemID  string
}

// Engine builds user and item models and answers queries against them.
type Engine struct {
	config *Config
	schema Schema
	store  *Store
	scores *cache.LRU[scoreKey, float64]
	logger zerolog.Logger

	// buildMu serializes builds; queries never take it
	buildMu sync.Mutex

	statusMu sync.RWMutex
	status   BuildStatus
}

// NewEngine creates an engine. A nil config selects DefaultConfig.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg = cfg.Clone()
	if cfg.Schema.Len() == 0 {
		cfg.Schema = DefaultSchema()
	}

	e := &Engine{
		config: cfg,
		schema: cfg.Schema,
		store:  NewStore(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}

	if cfg.Cache.Enabled {
		e.scores = cache.NewLRU[scoreKey, float64](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	return e, nil
}

// Schema returns the attribute schema the engine builds models for.
func (e *Engine) Schema() Schema {
	return e.schema
}

// Build computes all user and item models from records and publishes them
// as one snapshot. Nothing is published if either builder fails, and the
// previous snapshot (if any) stays in service. Builds are never incremental:
// every call replaces the whole model set.
func (e *Engine) Build(ctx context.Context, records map[string]Review) error {
	if !e.buildMu.TryLock() {
		return ErrBuildInProgress
	}
	defer e.buildMu.Unlock()

	start := time.Now()
	e.setBuilding(true)
	defer e.setBuilding(false)

	if e.config.BuildTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.BuildTimeout)
		defer cancel()
	}

	e.logger.Info().
		Int("reviews", len(records)).
		Int("dimensions", e.schema.Len()).
		Bool("parallel", e.config.Parallel).
		Msg("starting model build")

	users, items, err := e.buildModels(ctx, records)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		e.recordBuildFailure(err)
		return fmt.Errorf("build models: %w", err)
	}

	snap := &Snapshot{
		Users:       users,
		Items:       items,
		Version:     e.nextVersion(),
		BuiltAt:     time.Now(),
		ReviewCount: len(records),
	}
	e.store.Publish(snap)

	if e.scores != nil {
		e.scores.Clear()
	}

	duration := time.Since(start)
	e.recordBuildSuccess(snap, duration)

	e.logger.Info().
		Int("version", snap.Version).
		Int("users", len(users)).
		Int("items", len(items)).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("model build complete")

	return nil
}

// buildModels runs both builders, concurrently when configured.
// Each builder writes only its own result variable.
func (e *Engine) buildModels(ctx context.Context, records map[string]Review) (map[string]UserModel, map[string]ItemModel, error) {
	var (
		users map[string]UserModel
		items map[string]ItemModel
	)

	buildUsers := func() error {
		start := time.Now()
		users = BuildUserModels(e.schema, records)
		metrics.RecordModelBuild("user", time.Since(start))
		e.logger.Debug().Int("users", len(users)).Msg("user models built")
		return nil
	}

	buildItems := func() error {
		start := time.Now()
		built, err := BuildItemModels(e.schema, records)
		if err != nil {
			return err
		}
		items = built
		metrics.RecordModelBuild("item", time.Since(start))
		e.logger.Debug().Int("items", len(items)).Msg("item models built")
		return nil
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if e.config.Parallel {
		var g errgroup.Group
		g.Go(buildUsers)
		g.Go(buildItems)
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
		return users, items, nil
	}

	if err := buildUsers(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if err := buildItems(); err != nil {
		return nil, nil, err
	}
	return users, items, nil
}

// GetUserModel returns a copy of the user's model.
func (e *Engine) GetUserModel(userID string) (UserModel, error) {
	return e.store.UserModel(userID)
}

// GetItemModel returns a copy of the item's model.
func (e *Engine) GetItemModel(itemID string) (ItemModel, error) {
	return e.store.ItemModel(itemID)
}

// GetRecommendationValue scores the item for the user.
// Both models are read from the same snapshot.
func (e *Engine) GetRecommendationValue(ctx context.Context, userID, itemID string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	snap := e.store.Snapshot()
	if snap == nil {
		metrics.RecordRecommendation("not_ready")
		return 0, ErrModelsNotBuilt
	}

	key := scoreKey{version: snap.Version, userID: userID, itemID: itemID}
	if e.scores != nil {
		if value, ok := e.scores.Get(key); ok {
			metrics.RecordScoreCache(true)
			metrics.RecordRecommendation("ok")
			return value, nil
		}
		metrics.RecordScoreCache(false)
	}

	user, ok := snap.Users[userID]
	if !ok {
		metrics.RecordRecommendation("unknown_user")
		return 0, fmt.Errorf("%w: %q", ErrUnknownUser, userID)
	}

	item, ok := snap.Items[itemID]
	if !ok {
		metrics.RecordRecommendation("unknown_item")
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}

	value, err := Score(e.schema, user, item)
	if err != nil {
		metrics.RecordRecommendation("error")
		return 0, fmt.Errorf("score user %q item %q: %w", userID, itemID, err)
	}

	if e.scores != nil {
		e.scores.Add(key, value)
	}
	metrics.RecordRecommendation("ok")

	return value, nil
}

// ItemsWithUnratedDimensions lists items with at least one dimension that
// no review rated.
func (e *Engine) ItemsWithUnratedDimensions() ([]string, error) {
	return e.store.ItemsWithUnratedDimensions()
}

// Status returns the current build status.
func (e *Engine) Status() BuildStatus {
	e.statusMu.RLock()
	status := e.status
	e.statusMu.RUnlock()

	if e.scores != nil {
		hits, misses, size := e.scores.Stats()
		status.ScoreCache = &ScoreCacheStatus{Hits: hits, Misses: misses, Entries: size}
	}
	return status
}

// PruneScoreCache drops expired score cache entries and returns how many
// were removed. It is a no-op when the cache is disabled.
func (e *Engine) PruneScoreCache() int {
	if e.scores == nil {
		return 0
	}
	removed := e.scores.CleanupExpired()
	if removed > 0 {
		e.logger.Debug().Int("removed", removed).Msg("pruned expired score cache entries")
	}
	return removed
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// nextVersion returns the version for the next snapshot.
// Must be called with buildMu held.
func (e *Engine) nextVersion() int {
	if snap := e.store.Snapshot(); snap != nil {
		return snap.Version + 1
	}
	return 1
}

func (e *Engine) setBuilding(building bool) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.IsBuilding = building
}

func (e *Engine) recordBuildFailure(err error) {
	e.statusMu.Lock()
	e.status.LastError = err.Error()
	e.statusMu.Unlock()

	metrics.RecordModelBuildFailure()

	event := e.logger.Error()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		event = e.logger.Warn()
	}
	event.Err(err).Msg("model build failed")
}

func (e *Engine) recordBuildSuccess(snap *Snapshot, duration time.Duration) {
	e.statusMu.Lock()
	e.status.Ready = true
	e.status.ModelVersion = snap.Version
	e.status.BuiltAt = snap.BuiltAt
	e.status.LastBuildDurationMS = duration.Milliseconds()
	e.status.LastError = ""
	e.status.ReviewCount = snap.ReviewCount
	e.status.UserCount = len(snap.Users)
	e.status.ItemCount = len(snap.Items)
	e.statusMu.Unlock()

	metrics.RecordModelBuild("total", duration)
	metrics.RecordModelPublish(snap.Version, len(snap.Users), len(snap.Items))
}
