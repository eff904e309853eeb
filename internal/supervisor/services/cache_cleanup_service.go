// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CacheCleaner drops expired cache entries and reports how many it removed.
// Satisfied by *recommend.Recommender.
type CacheCleaner interface {
	CleanupCache() int
}

// CacheCleanupService sweeps expired recommendation results on a fixed
// interval so idle entries do not hold memory until the LRU evicts them.
type CacheCleanupService struct {
	cleaner  CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheCleanupService creates the service. A non-positive interval
// becomes 5m.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCacheCleanupService(cleaner CacheCleaner, interval time.Duration, logger zerolog.Logger) *CacheCleanupService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CacheCleanupService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-cleanup").Logger(),
		name:     "cache-cleanup",
	}
}

// Serve implements suture.Service.
func (s *CacheCleanupService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("cache cleanup service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if removed := s.cleaner.CleanupCache(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired recommendation results removed")
			}
		}
	}
}

// String identifies the service in supervisor events.
func (s *CacheCleanupService) String() string {
	return s.name
}
