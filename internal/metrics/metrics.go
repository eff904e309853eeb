// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	APIRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// Catalog Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of items retained in the loaded catalog",
		},
	)

	CatalogRowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_rows_dropped_total",
			Help: "Dataset rows dropped while loading the catalog",
		},
		[]string{"reason"}, // "malformed", "duplicate", "incomplete"
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Time spent reading and cleaning the dataset",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 10, 30},
		},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_load_errors_total",
			Help: "Catalog loads that failed with the dataset unavailable",
		},
		[]string{"source"},
	)

	CatalogLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_loaded",
			Help: "1 when a catalog is loaded, 0 when running degraded",
		},
	)

	// Recommender Metrics
	RecommenderVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommender_vocabulary_terms",
			Help: "Number of terms in the fitted TF-IDF vocabulary",
		},
	)

	RecommenderBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommender_build_duration_seconds",
			Help: "Time spent fitting the feature matrix",
		},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Recommendation queries by outcome",
		},
		[]string{"outcome"}, // "success", "no_match", "recommendation_failed", "cancelled"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation queries in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of recommendations returned per successful query",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimited counts a request rejected by the rate limiter.
func RecordRateLimited() {
	APIRateLimited.Inc()
}

// RecordCatalogLoad records the outcome of a catalog load. On error only the
// error counter moves and the catalog is marked unloaded.
func RecordCatalogLoad(source string, retained, malformed, duplicates, incomplete int, duration time.Duration, err error) {
	CatalogLoadDuration.Observe(duration.Seconds())
	if err != nil {
		CatalogLoadErrors.WithLabelValues(source).Inc()
		CatalogLoaded.Set(0)
		CatalogItems.Set(0)
		return
	}
	CatalogLoaded.Set(1)
	CatalogItems.Set(float64(retained))
	CatalogRowsDropped.WithLabelValues("malformed").Add(float64(malformed))
	CatalogRowsDropped.WithLabelValues("duplicate").Add(float64(duplicates))
	CatalogRowsDropped.WithLabelValues("incomplete").Add(float64(incomplete))
}

// RecordRecommenderBuild records the fitted model size and build time.
func RecordRecommenderBuild(vocabulary int, duration time.Duration) {
	RecommenderVocabulary.Set(float64(vocabulary))
	RecommenderBuildDuration.Set(duration.Seconds())
}

// RecordRecommendation records one recommendation query.
func RecordRecommendation(outcome string, results int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if outcome == "success" {
		RecommendationResults.Observe(float64(results))
	}
}

// RecordCacheLookup records a hit or miss on the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}

// SetCacheEntries updates the entry gauge for the named cache.
func SetCacheEntries(cache string, n int) {
	CacheEntries.WithLabelValues(cache).Set(float64(n))
}
