// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto
and exposed by the HTTP server at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limited_total: Requests rejected by the rate limiter (counter)

Catalog Metrics:
  - catalog_items: Items retained after cleaning (gauge)
  - catalog_loaded: 1 when loaded, 0 when degraded (gauge)
  - catalog_rows_dropped_total: Dropped rows (counter)
    Labels: reason (malformed, duplicate, incomplete)
  - catalog_load_duration_seconds: Load time (histogram)
  - catalog_load_errors_total: Failed loads (counter)
    Labels: source

Recommender Metrics:
  - recommender_vocabulary_terms: Fitted vocabulary size (gauge)
  - recommender_build_duration_seconds: Feature matrix build time (gauge)
  - recommendations_total: Queries by outcome (counter)
    Labels: outcome (success, no_match, recommendation_failed, cancelled)
  - recommendation_duration_seconds: Query latency (histogram)
  - recommendation_results: Results per successful query (histogram)

Cache Metrics:
  - cache_hits_total, cache_misses_total (counter), cache_entries (gauge)
    Labels: cache

# Usage

	start := time.Now()
	res, err := rec.Recommend(ctx, title, n)
	metrics.RecordRecommendation(string(outcome), len(res.Recommendations), time.Since(start))

# Thread Safety

Prometheus collectors are safe for concurrent use.
*/
package metrics
