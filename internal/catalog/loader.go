// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package catalog

import (
	"context"
	"time"

	"github.com/tomtom215/shelfmatch/internal/logging"
)

// LoadStats describes what the cleaning pipeline did with a dataset.
type LoadStats struct {
	Source     string        `json:"source"`
	Path       string        `json:"path"`
	RowsRead   int           `json:"rows_read"`
	Malformed  int           `json:"malformed_skipped"`
	Duplicates int           `json:"duplicates_dropped"`
	Incomplete int           `json:"incomplete_dropped"`
	Retained   int           `json:"retained"`
	Duration   time.Duration `json:"duration_ns"`
}

// Load reads src and returns the cleaned catalog. Any error is a *LoadError
// or a context error.
func Load(ctx context.Context, src Source) (*Catalog, LoadStats, error) {
	start := time.Now()
	log := logging.WithComponent("catalog")

	table, err := src.Read(ctx)
	if err != nil {
		log.Error().Err(err).
			Str("source", src.Name()).
			Str("path", src.Location()).
			Msg("catalog load failed")
		return nil, LoadStats{Source: src.Name(), Path: src.Location()}, err
	}

	cat, stats := Build(table.Rows)
	stats.Source = src.Name()
	stats.Path = src.Location()
	stats.Malformed = table.Malformed
	stats.RowsRead += table.Malformed
	stats.Duration = time.Since(start)

	log.Info().
		Str("source", stats.Source).
		Str("path", stats.Path).
		Int("rows_read", stats.RowsRead).
		Int("malformed", stats.Malformed).
		Int("duplicates", stats.Duplicates).
		Int("incomplete", stats.Incomplete).
		Int("retained", stats.Retained).
		Dur("duration", stats.Duration).
		Msg("catalog loaded")

	return cat, stats, nil
}

// Build runs the cleaning pipeline over rows already read from a source.
func Build(rows []Row) (*Catalog, LoadStats) {
	stats := LoadStats{RowsRead: len(rows)}
	seen := make(map[string]struct{}, len(rows))
	items := make([]Item, 0, len(rows))

	for _, r := range rows {
		title, authors := Normalize(r.Title), Normalize(r.Authors)

		// Deduplicate on the normalized title first. Absent titles share one
		// key, so only the first of them reaches the filter.
		key := title
		if !r.HasTitle {
			key = "\x00absent"
		}
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		if !r.HasTitle || !r.HasAuthors || title == "" || authors == "" {
			stats.Incomplete++
			continue
		}
		items = append(items, Item{Title: title, Authors: authors})
	}

	stats.Retained = len(items)
	return &Catalog{items: items}, stats
}
