// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfmatch/internal/api"
	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/config"
	"github.com/tomtom215/shelfmatch/internal/metrics"
	"github.com/tomtom215/shelfmatch/internal/recommend"
)

// initCatalog loads the dataset and fits the recommender. A failure at any
// step is recorded in the returned state instead of aborting startup, so the
// server can still answer with the dataset-unavailable message.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (api.CatalogState, *recommend.Recommender) {
	path := cfg.Catalog.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	logger.Info().
		Str("source", cfg.Catalog.Source).
		Str("path", path).
		Dur("timeout", cfg.Catalog.LoadTimeout).
		Msg("loading catalog")

	state := api.CatalogState{LoadedAt: time.Now()}

	src, err := catalog.NewSource(cfg.Catalog.Source, path)
	if err != nil {
		state.Err = err
		return state, nil
	}

	if cfg.Catalog.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Catalog.LoadTimeout)
		defer cancel()
	}

	cat, stats, err := catalog.Load(ctx, src)
	state.Stats = stats
	metrics.RecordCatalogLoad(src.Name(), stats.Retained, stats.Malformed, stats.Duplicates, stats.Incomplete, stats.Duration, err)
	if err != nil {
		state.Err = err
		return state, nil
	}

	rec, err := recommend.New(cat, buildRecommendConfig(cfg), logger)
	if err != nil {
		state.Err = err
		return state, nil
	}
	state.Recommender = rec
	state.LoadedAt = time.Now()
	return state, rec
}

// buildRecommendConfig maps application config onto the recommender's.
func buildRecommendConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		Match:    cfg.Recommend.Match,
		Ranking:  cfg.Recommend.Ranking,
		DefaultN: cfg.Recommend.DefaultN,
		MaxN:     cfg.Recommend.MaxN,
		Cache: recommend.CacheConfig{
			Enabled: cfg.Recommend.CacheEnabled,
			Size:    cfg.Recommend.CacheSize,
			TTL:     cfg.Recommend.CacheTTL,
		},
	}
}
