// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package main is the entry point for the Shelfmatch server.

Shelfmatch loads a book catalog once at startup, fits a TF-IDF model over
each book's title and authors, and serves "books like this one" lookups
through an HTML page and a JSON API.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("shelfmatch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Cache cleanup (when the result cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: Koanf v2 with defaults, optional YAML file, environment
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: CSV or DuckDB reader, cleaning pipeline
 4. Recommender: TF-IDF feature matrix and result cache
 5. Supervisor Tree and HTTP Server: Chi router with middleware stack

A catalog that fails to load does not stop the process. The server comes
up in degraded mode: recommendation requests answer with the
dataset-unavailable message, /api/v1/health reports "degraded" and
/api/v1/health/ready returns 503.

# Configuration

Common environment variables:

	DATASET_PATH         Dataset file (default: dataset/books.csv)
	CATALOG_SOURCE       csv or duckdb (default: csv)
	RECOMMEND_RANKING    legacy or exclude-anchor (default: legacy)
	RECOMMEND_MATCH      substring or exact (default: substring)
	HTTP_PORT            Listen port (default: 8080)
	LOG_LEVEL            trace, debug, info, warn, error (default: info)
	LOG_FORMAT           json or console (default: json)

A YAML file can be supplied with CONFIG_PATH.

# Graceful Shutdown

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests within the shutdown timeout and any service that fails
to stop in time is reported in the logs.
*/
package main
