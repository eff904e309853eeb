// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/config"
	"github.com/tomtom215/shelfmatch/internal/middleware"
	"github.com/tomtom215/shelfmatch/internal/recommend"
)

// Version is reported by the health endpoints. Overridden at build time.
var Version = "dev"

// Recommender is the query surface the handlers need from
// *recommend.Recommender.
type Recommender interface {
	Recommend(ctx context.Context, query string, n int) (*recommend.Result, error)
	Stats() recommend.Stats
}

// CatalogState is the outcome of the startup catalog load. Recommender is
// nil when loading failed; Err then holds the load error and every
// recommendation request answers DATASET_UNAVAILABLE.
type CatalogState struct {
	Recommender Recommender
	Stats       catalog.LoadStats
	Err         error
	LoadedAt    time.Time
}

// Available reports whether recommendations can be served.
func (s CatalogState) Available() bool {
	return s.Recommender != nil && s.Err == nil
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared response and parameter helpers
//   - handlers_recommend.go: Recommendation endpoint and error mapping
//   - handlers_page.go: HTML page with the title field
//   - handlers_catalog.go: Catalog and performance statistics
//   - handlers_health.go: Health/monitoring endpoints
type Handler struct {
	config    *config.Config
	state     CatalogState
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// A nil perfMon gets a monitor that keeps the last 1000 requests.
//
// Example:
//
//	handler := api.NewHandler(cfg, api.CatalogState{Recommender: rec, Stats: stats}, nil)
//	router := api.NewRouter(handler)
//	http.ListenAndServe(cfg.Server.Address(), router.SetupChi())
func NewHandler(cfg *config.Config, state CatalogState, perfMon *middleware.PerformanceMonitor) *Handler {
	if perfMon == nil {
		perfMon = middleware.NewPerformanceMonitor(1000, time.Second)
	}
	if state.LoadedAt.IsZero() {
		state.LoadedAt = time.Now()
	}
	return &Handler{
		config:    cfg,
		state:     state,
		perfMon:   perfMon,
		startTime: time.Now(),
	}
}

// PerformanceMonitor returns the monitor whose middleware feeds the
// performance stats endpoint.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}
