// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package models defines the JSON payloads exchanged over the HTTP API.

Every endpoint answers with an APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {...}}
	{"status": "error", "data": null, "error": {"code": "...", "message": "..."}, "metadata": {...}}

Payload types:

  - RecommendationsResponse: anchor book and ranked neighbors
  - CatalogStats: load statistics and fitted model statistics
  - HealthStatus: liveness and readiness details

The types carry no behavior; conversion from domain types happens in the
api package.
*/
package models
