// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package models

import "time"

// Book is a catalog record as shown to clients.
type Book struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
}

// RecommendedBook is one ranked neighbor of the anchor book.
type RecommendedBook struct {
	Rank    int     `json:"rank"`
	Title   string  `json:"title"`
	Authors string  `json:"authors"`
	Score   float64 `json:"score"`
}

// RecommendationsResponse is the payload of GET /api/v1/recommendations.
//
// Example:
//
//	{
//	  "query": "dune",
//	  "anchor": {"title": "dune", "authors": "frank herbert"},
//	  "n": 2,
//	  "ranking": "legacy",
//	  "recommendations": [
//	    {"rank": 1, "title": "dune messiah", "authors": "frank herbert", "score": 0.71}
//	  ]
//	}
type RecommendationsResponse struct {
	Query           string            `json:"query"`
	Anchor          Book              `json:"anchor"`
	N               int               `json:"n"`
	Ranking         string            `json:"ranking"`
	Recommendations []RecommendedBook `json:"recommendations"`
}

// CatalogLoad summarizes the startup catalog load.
type CatalogLoad struct {
	Source            string    `json:"source"`
	Path              string    `json:"path"`
	RowsRead          int       `json:"rows_read"`
	MalformedSkipped  int       `json:"malformed_skipped"`
	DuplicatesDropped int       `json:"duplicates_dropped"`
	IncompleteDropped int       `json:"incomplete_dropped"`
	Retained          int       `json:"retained"`
	DurationMS        int64     `json:"duration_ms"`
	LoadedAt          time.Time `json:"loaded_at"`
	Error             string    `json:"error,omitempty"`
}

// RecommenderStats describes the fitted similarity model.
type RecommenderStats struct {
	Items           int       `json:"items"`
	Vocabulary      int       `json:"vocabulary"`
	NonZero         int       `json:"non_zero"`
	ZeroVectors     int       `json:"zero_vectors"`
	BuildDurationMS int64     `json:"build_duration_ms"`
	BuiltAt         time.Time `json:"built_at"`
	Match           string    `json:"match"`
	Ranking         string    `json:"ranking"`
	CacheEnabled    bool      `json:"cache_enabled"`
	CacheHits       int64     `json:"cache_hits"`
	CacheMisses     int64     `json:"cache_misses"`
	CacheSize       int       `json:"cache_size"`
}

// CatalogStats is the payload of GET /api/v1/catalog/stats. Recommender is
// nil when the catalog failed to load.
type CatalogStats struct {
	Available   bool              `json:"available"`
	Load        CatalogLoad       `json:"load"`
	Recommender *RecommenderStats `json:"recommender,omitempty"`
}
