// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package config provides centralized configuration management for Shelfmatch.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file (CONFIG_PATH, config.yaml, /etc/shelfmatch/config.yaml), then
environment variables. Later layers win. LoadWithKoanf validates the result.

# Environment Variables

Catalog:
  - DATASET_PATH: Dataset file, relative to the working directory (default: dataset/books.csv)
  - CATALOG_SOURCE: csv or duckdb (default: csv)
  - CATALOG_LOAD_TIMEOUT: Bound on the startup load (default: 2m)

Recommender:
  - RECOMMEND_MATCH: substring or exact (default: substring)
  - RECOMMEND_RANKING: legacy or exclude-anchor (default: legacy)
  - RECOMMEND_DEFAULT_N: Results when n is omitted (default: 5)
  - RECOMMEND_MAX_N: Upper bound on n (default: 50)
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_SIZE, RECOMMEND_CACHE_TTL,
    RECOMMEND_CACHE_CLEANUP_INTERVAL: Result cache

HTTP Server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8080)
  - HTTP_TIMEOUT (default: 30s), HTTP_SHUTDOWN_TIMEOUT (default: 10s)
  - ENVIRONMENT: development, staging or production
  - API_MAX_TITLE_LENGTH (default: 512)

Security:
  - RATE_LIMIT_REQUESTS (default: 100), RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)
  - CORS_ORIGINS: Comma-separated list (default: *)

Logging:
  - LOG_LEVEL (default: info), LOG_FORMAT json|console (default: json)
  - LOG_CALLER (default: false)

# Example YAML

	catalog:
	  path: /data/books.csv
	  source: duckdb
	recommend:
	  ranking: exclude-anchor
	  default_n: 10
	logging:
	  format: console
*/
package config
