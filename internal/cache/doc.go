// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package cache provides a thread-safe, generic LRU cache with TTL expiry.

The recommender uses it to memoize results per (normalized query, n). The
catalog and feature matrix are immutable after startup, so a cached result
only goes stale when the process restarts; the TTL bounds memory held by
queries nobody repeats.

# Behavior

  - O(1) Get, Add and Remove via a hashmap plus a doubly-linked list
  - Least recently used entry evicted once capacity is exceeded
  - Lazy expiry on Get, plus CleanupExpired for periodic sweeps
  - Hit/miss counters exposed through Stats

# Usage

	c := cache.NewLRU[string, *recommend.Result](1024, 10*time.Minute)
	c.Add(key, res)
	if res, ok := c.Get(key); ok {
	    ...
	}
*/
package cache
