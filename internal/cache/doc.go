// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

/*
Package cache provides a thread-safe, generic LRU cache with TTL support.

The recommendation engine uses it to keep recently computed recommendation
values, keyed by model version, user id and item id. Because the key carries
the model version, entries of an older snapshot are never served after a
rebuild even before they are cleared.

# Usage Example

	scores := cache.NewLRU[string, float64](10000, 5*time.Minute)

	scores.Add("u1|i1", 3.4)
	if v, ok := scores.Get("u1|i1"); ok {
	    // use cached value
	}

	hits, misses, size := scores.Stats()

# Expiration

Expired entries are dropped when read. Entries that are never read again
stay until CleanupExpired runs; cmd/server calls it periodically through
the engine's PruneScoreCache.

# Thread Safety

All operations take an internal mutex; Get updates recency order so it
needs exclusive access as well.
*/
package cache
