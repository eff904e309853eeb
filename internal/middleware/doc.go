// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package middleware provides HTTP middleware components for the application.

Middleware here uses the http.HandlerFunc signature; the api package adapts
them for chi's r.Use.

Key Components:

  - RequestID: UUID request IDs, correlation IDs and a request-scoped logger
  - AccessLog: one zerolog entry per request
  - PrometheusMetrics: request count, latency and in-flight gauge labeled
    by chi route pattern
  - PerformanceMonitor: sliding window of recent requests with percentiles
  - Compression: gzip for clients that send Accept-Encoding: gzip

Typical stack:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(monitor.Middleware))
	r.Use(chiMiddleware(middleware.Compression))
*/
package middleware
