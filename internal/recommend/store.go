// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package recommend

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"
)

// Snapshot is one complete, immutable set of user and item models.
// Nothing may modify a snapshot once it has been published.
type Snapshot struct {
	Users       map[string]UserModel
	Items       map[string]ItemModel
	Version     int
	BuiltAt     time.Time
	ReviewCount int
}

// Store serves models from the most recently published snapshot.
// Readers never take a lock; Publish replaces the snapshot in one atomic swap.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty store. Queries fail with ErrModelsNotBuilt until
// the first snapshot is published.
func NewStore() *Store {
	return &Store{}
}

// Publish makes snap the snapshot served to all subsequent queries.
func (s *Store) Publish(snap *Snapshot) {
	s.current.Store(snap)
}

// Snapshot returns the published snapshot, or nil before the first publish.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// UserModel returns a copy of the user's model.
func (s *Store) UserModel(userID string) (UserModel, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrModelsNotBuilt
	}

	model, ok := snap.Users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUser, userID)
	}
	return model.Clone(), nil
}

// ItemModel returns a copy of the item's model.
func (s *Store) ItemModel(itemID string) (ItemModel, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrModelsNotBuilt
	}

	model, ok := snap.Items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}
	return model.Clone(), nil
}

// ItemsWithUnratedDimensions lists, sorted, the items whose model has at
// least one dimension that no review rated.
func (s *Store) ItemsWithUnratedDimensions() ([]string, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrModelsNotBuilt
	}

	ids := make([]string, 0)
	for itemID, model := range snap.Items {
		for _, v := range model {
			if v == UnratedValue {
				ids = append(ids, itemID)
				break
			}
		}
	}
	sort.Strings(ids)
	return ids, nil
}
