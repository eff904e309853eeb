// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"net/http"

	"github.com/tomtom215/shelfmatch/internal/models"
)

// CatalogStats handles GET /api/v1/catalog/stats.
// It answers 200 in degraded mode too, with available=false and the load
// error, so operators can see why the catalog is missing.
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	ls := h.state.Stats
	stats := models.CatalogStats{
		Available: h.state.Available(),
		Load: models.CatalogLoad{
			Source:            ls.Source,
			Path:              ls.Path,
			RowsRead:          ls.RowsRead,
			MalformedSkipped:  ls.Malformed,
			DuplicatesDropped: ls.Duplicates,
			IncompleteDropped: ls.Incomplete,
			Retained:          ls.Retained,
			DurationMS:        ls.Duration.Milliseconds(),
			LoadedAt:          h.state.LoadedAt,
		},
	}
	if h.state.Err != nil {
		stats.Load.Error = h.state.Err.Error()
	}

	if h.state.Available() {
		rs := h.state.Recommender.Stats()
		stats.Recommender = &models.RecommenderStats{
			Items:           rs.Items,
			Vocabulary:      rs.Vocabulary,
			NonZero:         rs.NonZero,
			ZeroVectors:     rs.ZeroVectors,
			BuildDurationMS: rs.BuildDuration.Milliseconds(),
			BuiltAt:         rs.BuiltAt,
			Match:           rs.Match,
			Ranking:         rs.Ranking,
			CacheEnabled:    rs.CacheEnabled,
			CacheHits:       rs.CacheHits,
			CacheMisses:     rs.CacheMisses,
			CacheSize:       rs.CacheSize,
		}
	}

	respondSuccess(w, r, stats, models.Metadata{})
}

// PerformanceStats handles GET /api/v1/stats/performance.
// Optional ?recent=N adds the last N requests (capped at 100).
func (h *Handler) PerformanceStats(w http.ResponseWriter, r *http.Request) {
	recent, err := parseIntParam(r, "recent", 0)
	if err != nil || recent < 0 {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "recent must be a non-negative integer", nil)
		return
	}
	if recent > 100 {
		recent = 100
	}

	data := map[string]interface{}{
		"endpoints": h.perfMon.GetStats(),
	}
	if recent > 0 {
		data["recent"] = h.perfMon.GetRecentMetrics(recent)
	}

	respondSuccess(w, r, data, models.Metadata{})
}
