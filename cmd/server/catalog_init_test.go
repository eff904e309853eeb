// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/config"
)

func testConfig(path string) *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{
			Path:        path,
			Source:      "csv",
			LoadTimeout: 10 * time.Second,
		},
		Recommend: config.RecommendConfig{
			Match:        "substring",
			Ranking:      "legacy",
			DefaultN:     5,
			MaxN:         50,
			CacheEnabled: true,
			CacheSize:    16,
			CacheTTL:     time.Minute,
		},
	}
}

func TestInitCatalog_Loaded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.csv")
	data := "title,authors\nDune,Frank Herbert\nDune Messiah,Frank Herbert\nFoundation,Isaac Asimov\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	state, rec := initCatalog(context.Background(), testConfig(path), zerolog.Nop())

	if !state.Available() {
		t.Fatalf("catalog not available: %v", state.Err)
	}
	if rec == nil {
		t.Fatal("recommender is nil")
	}
	if state.Stats.Retained != 3 {
		t.Errorf("Retained = %d, want 3", state.Stats.Retained)
	}

	res, err := rec.Recommend(context.Background(), "dune", 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(res.Recommendations) != 1 {
		t.Errorf("got %d recommendations, want 1", len(res.Recommendations))
	}
}

func TestInitCatalog_Degraded(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*config.Config)
		wantLoadEr bool
	}{
		{
			name:       "missing file",
			mutate:     func(c *config.Config) { c.Catalog.Path = filepath.Join(t.TempDir(), "absent.csv") },
			wantLoadEr: true,
		},
		{
			name:   "unknown source",
			mutate: func(c *config.Config) { c.Catalog.Source = "parquet" },
		},
		{
			name:   "invalid ranking",
			mutate: func(c *config.Config) { c.Recommend.Ranking = "random" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "books.csv")
			if err := os.WriteFile(path, []byte("title,authors\nDune,Frank Herbert\n"), 0o600); err != nil {
				t.Fatalf("write dataset: %v", err)
			}
			cfg := testConfig(path)
			tt.mutate(cfg)

			state, rec := initCatalog(context.Background(), cfg, zerolog.Nop())

			if state.Available() || rec != nil {
				t.Fatal("expected degraded state")
			}
			if state.Err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(state.Err, catalog.ErrDatasetUnavailable); got != tt.wantLoadEr {
				t.Errorf("errors.Is(ErrDatasetUnavailable) = %v, want %v (%v)", got, tt.wantLoadEr, state.Err)
			}
		})
	}
}

func TestBuildRecommendConfig(t *testing.T) {
	cfg := testConfig("books.csv")
	cfg.Recommend.Ranking = "exclude-anchor"
	cfg.Recommend.CacheEnabled = false

	got := buildRecommendConfig(cfg)

	if got.Ranking != "exclude-anchor" || got.Match != "substring" {
		t.Errorf("modes = %s/%s", got.Ranking, got.Match)
	}
	if got.DefaultN != 5 || got.MaxN != 50 {
		t.Errorf("n bounds = %d/%d", got.DefaultN, got.MaxN)
	}
	if got.Cache.Enabled {
		t.Error("cache should be disabled")
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
