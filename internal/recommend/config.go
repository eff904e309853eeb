// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"fmt"
	"time"
)

// Anchor matching modes.
const (
	MatchSubstring = "substring"
	MatchExact     = "exact"
)

// Ranking modes.
const (
	// RankingLegacy drops the single top-scoring position and returns the
	// next n in descending order.
	RankingLegacy = "legacy"

	// RankingExcludeAnchor skips the anchor position explicitly.
	RankingExcludeAnchor = "exclude-anchor"
)

// Config contains recommender configuration.
type Config struct {
	// Match selects how the anchor is located: substring or exact.
	Match string `json:"match"`

	// Ranking selects the ranking mode: legacy or exclude-anchor.
	Ranking string `json:"ranking"`

	// DefaultN is used when a request asks for n <= 0.
	DefaultN int `json:"default_n"`

	// MaxN caps n. Larger requests are clamped, not rejected.
	MaxN int `json:"max_n"`

	// Cache controls result memoization.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains result cache parameters.
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	Size    int           `json:"size"`
	TTL     time.Duration `json:"ttl"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Match:    MatchSubstring,
		Ranking:  RankingLegacy,
		DefaultN: 5,
		MaxN:     50,
		Cache: CacheConfig{
			Enabled: true,
			Size:    1024,
			TTL:     10 * time.Minute,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Match {
	case MatchSubstring, MatchExact:
	default:
		return fmt.Errorf("match must be %q or %q, got %q", MatchSubstring, MatchExact, c.Match)
	}
	switch c.Ranking {
	case RankingLegacy, RankingExcludeAnchor:
	default:
		return fmt.Errorf("ranking must be %q or %q, got %q", RankingLegacy, RankingExcludeAnchor, c.Ranking)
	}
	if c.DefaultN <= 0 {
		return fmt.Errorf("default_n must be positive, got %d", c.DefaultN)
	}
	if c.MaxN < c.DefaultN {
		return fmt.Errorf("max_n must be >= default_n, got %d < %d", c.MaxN, c.DefaultN)
	}
	if c.Cache.Enabled {
		if c.Cache.Size <= 0 {
			return fmt.Errorf("cache.size must be positive, got %d", c.Cache.Size)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
	}
	return nil
}

// effectiveN applies the default and the cap to a requested n.
func (c *Config) effectiveN(n int) int {
	if n <= 0 {
		return c.DefaultN
	}
	if n > c.MaxN {
		return c.MaxN
	}
	return n
}
