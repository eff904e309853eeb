// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/shelfmatch/internal/catalog"
)

// Status is the non-error result of a query.
type Status string

const (
	// StatusOK means an anchor was found and neighbors were ranked.
	StatusOK Status = "ok"

	// StatusNoMatch means no catalog title matched the query.
	StatusNoMatch Status = "no_match"
)

// Recommendation is one ranked neighbor.
type Recommendation struct {
	Position int     `json:"position"`
	Title    string  `json:"title"`
	Authors  string  `json:"authors"`
	Score    float64 `json:"score"`
}

// Result is the outcome of a successful Recommend call.
type Result struct {
	Query           string           `json:"query"`
	Status          Status           `json:"status"`
	Anchor          *catalog.Item    `json:"anchor,omitempty"`
	AnchorPosition  int              `json:"anchor_position"`
	N               int              `json:"n"`
	Ranking         string           `json:"ranking"`
	Recommendations []Recommendation `json:"recommendations"`
	Cached          bool             `json:"cached"`
	Duration        time.Duration    `json:"duration_ns"`
}

// Outcome returns OutcomeSuccess or OutcomeNoMatch.
func (r *Result) Outcome() Outcome {
	if r.Status == StatusNoMatch {
		return OutcomeNoMatch
	}
	return OutcomeSuccess
}

// Titles returns the recommended titles in rank order.
func (r *Result) Titles() []string {
	out := make([]string, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		out[i] = rec.Title
	}
	return out
}

// clone returns a copy safe to hand to a caller while the original stays cached.
func (r *Result) clone() *Result {
	c := *r
	c.Recommendations = make([]Recommendation, len(r.Recommendations))
	copy(c.Recommendations, r.Recommendations)
	if r.Anchor != nil {
		a := *r.Anchor
		c.Anchor = &a
	}
	return &c
}

// Outcome is the kind of result a caller branches on.
type Outcome string

const (
	OutcomeSuccess              Outcome = "success"
	OutcomeNoMatch              Outcome = "no_match"
	OutcomeDatasetUnavailable   Outcome = "dataset_unavailable"
	OutcomeRecommendationFailed Outcome = "recommendation_failed"
	OutcomeCancelled            Outcome = "cancelled"
)

// Classify maps an error from loading or querying to an Outcome. A nil error
// is OutcomeSuccess; use Result.Outcome to tell success from no match.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, catalog.ErrDatasetUnavailable):
		return OutcomeDatasetUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeRecommendationFailed
	}
}

// Stats describes the fitted model.
type Stats struct {
	Items         int           `json:"items"`
	Vocabulary    int           `json:"vocabulary"`
	NonZero       int           `json:"non_zero"`
	ZeroVectors   int           `json:"zero_vectors"`
	BuildDuration time.Duration `json:"build_duration_ns"`
	BuiltAt       time.Time     `json:"built_at"`
	Match         string        `json:"match"`
	Ranking       string        `json:"ranking"`
	CacheEnabled  bool          `json:"cache_enabled"`
	CacheHits     int64         `json:"cache_hits"`
	CacheMisses   int64         `json:"cache_misses"`
	CacheSize     int           `json:"cache_size"`
}
