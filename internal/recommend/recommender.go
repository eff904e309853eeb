// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfmatch/internal/cache"
	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/metrics"
)

const resultCacheName = "recommendations"

type cacheKey struct {
	query string
	n     int
}

// Recommender answers similarity queries over a catalog. All state is built
// in New and never modified, so a Recommender is safe for concurrent use.
type Recommender struct {
	cfg    Config
	logger zerolog.Logger

	catalog    *catalog.Catalog
	vectorizer *Vectorizer
	matrix     []Vector

	cache *cache.LRU[cacheKey, *Result]

	// score computes one similarity per catalog position for an anchor.
	score func(anchor int) []float64

	nonZero     int
	zeroVectors int
	buildTime   time.Duration
	builtAt     time.Time
}

// New fits the feature matrix over every item in cat. A nil cfg uses
// DefaultConfig. An empty catalog is valid; every query against it is a
// no match.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Recommender, error) {
	if cat == nil {
		return nil, errors.New("recommend: catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}

	start := time.Now()
	docs := make([]string, cat.Len())
	for i := range docs {
		docs[i] = cat.At(i).CombinedText()
	}
	vectorizer, matrix := Fit(docs)

	r := &Recommender{
		cfg:        *cfg,
		logger:     logger.With().Str("component", "recommend").Logger(),
		catalog:    cat,
		vectorizer: vectorizer,
		matrix:     matrix,
		builtAt:    time.Now(),
	}
	r.score = r.scoreAll
	if cfg.Cache.Enabled {
		r.cache = cache.NewLRU[cacheKey, *Result](cfg.Cache.Size, cfg.Cache.TTL)
	}
	for _, v := range matrix {
		r.nonZero += v.NNZ()
		if v.IsZero() {
			r.zeroVectors++
		}
	}
	r.buildTime = time.Since(start)

	metrics.RecordRecommenderBuild(vectorizer.Size(), r.buildTime)
	r.logger.Info().
		Int("items", cat.Len()).
		Int("vocabulary", vectorizer.Size()).
		Int("non_zero", r.nonZero).
		Int("zero_vectors", r.zeroVectors).
		Dur("duration", r.buildTime).
		Msg("feature matrix built")

	return r, nil
}

// Recommend returns up to n items similar to the first catalog item whose
// title matches query. n <= 0 uses the configured default and n above the
// configured maximum is clamped.
//
// A query with no matching title returns a Result with StatusNoMatch and a
// nil error. Faults while scoring or ranking return a *FailureError. The
// only other errors are context errors.
func (r *Recommender) Recommend(ctx context.Context, query string, n int) (*Result, error) {
	start := time.Now()
	q := catalog.Normalize(query)
	n = r.cfg.effectiveN(n)

	logger := r.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("query", q).
		Int("n", n).
		Logger()

	res, err := r.recommend(ctx, q, n, logger)

	outcome := Classify(err)
	results := 0
	if err == nil {
		outcome = res.Outcome()
		results = len(res.Recommendations)
		res.Duration = time.Since(start)
	}
	metrics.RecordRecommendation(string(outcome), results, time.Since(start))

	switch outcome {
	case OutcomeRecommendationFailed:
		logger.Error().Err(err).Msg("recommendation failed")
	case OutcomeCancelled:
		logger.Debug().Err(err).Msg("recommendation cancelled")
	default:
		logger.Debug().
			Str("outcome", string(outcome)).
			Int("results", results).
			Bool("cached", res.Cached).
			Dur("duration", res.Duration).
			Msg("recommendation served")
	}
	return res, err
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (r *Recommender) recommend(ctx context.Context, q string, n int, logger zerolog.Logger) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := cacheKey{query: q, n: n}
	if r.cache != nil {
		cached, ok := r.cache.Get(key)
		metrics.RecordCacheLookup(resultCacheName, ok)
		if ok {
			logger.Debug().Msg("cache hit")
			res := cached.clone()
			res.Cached = true
			return res, nil
		}
	}

	res, err := r.compute(ctx, q, n)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Add(key, res.clone())
		metrics.SetCacheEntries(resultCacheName, r.cache.Len())
	}
	return res, nil
}

// compute runs locate, score and rank. A panic anywhere in those steps is
// reported as a *FailureError.
func (r *Recommender) compute(ctx context.Context, q string, n int) (res *Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			res = nil
			err = &FailureError{Query: q, Cause: fmt.Errorf("panic: %v", p)}
		}
	}()

	res = &Result{
		Query:           q,
		Status:          StatusNoMatch,
		AnchorPosition:  -1,
		N:               n,
		Ranking:         r.cfg.Ranking,
		Recommendations: []Recommendation{},
	}

	anchor := r.locate(q)
	if anchor < 0 {
		return res, nil
	}
	item := r.catalog.At(anchor)
	res.Status = StatusOK
	res.Anchor = &item
	res.AnchorPosition = anchor

	scores := r.score(anchor)
	if len(scores) != r.catalog.Len() {
		return nil, &FailureError{
			Query: q,
			Cause: fmt.Errorf("score count %d does not match catalog size %d", len(scores), r.catalog.Len()),
		}
	}
	for i, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, &FailureError{Query: q, Cause: fmt.Errorf("non-finite score at position %d", i)}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var positions []int
	switch r.cfg.Ranking {
	case RankingExcludeAnchor:
		positions = rankExcludingAnchor(scores, anchor, n)
	default:
		positions = rankLegacy(scores, n)
	}

	for _, pos := range positions {
		it := r.catalog.At(pos)
		res.Recommendations = append(res.Recommendations, Recommendation{
			Position: pos,
			Title:    it.Title,
			Authors:  it.Authors,
			Score:    scores[pos],
		})
	}
	return res, nil
}

// locate returns the first catalog position whose title matches q, or -1.
func (r *Recommender) locate(q string) int {
	for i := 0; i < r.catalog.Len(); i++ {
		title := r.catalog.At(i).Title
		if r.cfg.Match == MatchExact {
			if title == q {
				return i
			}
			continue
		}
		if strings.Contains(title, q) {
			return i
		}
	}
	return -1
}

// scoreAll returns the cosine similarity of every row with the anchor row.
func (r *Recommender) scoreAll(anchor int) []float64 {
	a := r.matrix[anchor]
	scores := make([]float64, len(r.matrix))
	for i, v := range r.matrix {
		scores[i] = Cosine(a, v)
	}
	return scores
}

// rankLegacy sorts positions by ascending score (ties keep catalog order),
// takes the n positions just below the top one and returns them highest
// first. The top position is assumed to be the anchor; when several
// positions tie at the maximum, the anchor may be returned and the last tied
// position dropped instead. Fewer than n positions come back when the
// catalog has n or fewer items.
func rankLegacy(scores []float64, n int) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	end := len(order) - 1
	if end <= 0 {
		return []int{}
	}
	start := end - n
	if start < 0 {
		start = 0
	}

	out := make([]int, 0, end-start)
	for i := end - 1; i >= start; i-- {
		out = append(out, order[i])
	}
	return out
}

// rankExcludingAnchor sorts positions by descending score (ties keep
// catalog order), skips the anchor and returns the first n.
func rankExcludingAnchor(scores []float64, anchor, n int) []int {
	order := make([]int, 0, len(scores))
	for i := range scores {
		if i != anchor {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// Catalog returns the catalog the model was built from.
func (r *Recommender) Catalog() *catalog.Catalog {
	return r.catalog
}

// Config returns a copy of the active configuration.
func (r *Recommender) Config() Config {
	return r.cfg
}

// Vector returns the feature vector for a catalog position.
func (r *Recommender) Vector(pos int) Vector {
	return r.matrix[pos]
}

// Similarity returns the cosine similarity between two catalog positions.
func (r *Recommender) Similarity(a, b int) float64 {
	return Cosine(r.matrix[a], r.matrix[b])
}

// Stats describes the fitted model and the result cache.
func (r *Recommender) Stats() Stats {
	s := Stats{
		Items:         r.catalog.Len(),
		Vocabulary:    r.vectorizer.Size(),
		NonZero:       r.nonZero,
		ZeroVectors:   r.zeroVectors,
		BuildDuration: r.buildTime,
		BuiltAt:       r.builtAt,
		Match:         r.cfg.Match,
		Ranking:       r.cfg.Ranking,
		CacheEnabled:  r.cache != nil,
	}
	if r.cache != nil {
		s.CacheHits, s.CacheMisses, s.CacheSize = r.cache.Stats()
	}
	return s
}

// CleanupCache drops expired cached results and returns how many were removed.
func (r *Recommender) CleanupCache() int {
	if r.cache == nil {
		return 0
	}
	removed := r.cache.CleanupExpired()
	metrics.SetCacheEntries(resultCacheName, r.cache.Len())
	return removed
}
