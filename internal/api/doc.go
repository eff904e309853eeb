// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package api provides the HTTP surface for Shelfmatch: an HTML page with a
single title field and a small JSON API over the same recommender.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers, holding the startup CatalogState
  - ChiMiddleware: CORS (go-chi/cors) and per-client rate limiting (go-chi/httprate)

Endpoints:

	GET /                                  HTML page, ?title= renders results
	GET /api/v1/recommendations?title=&n=  ranked neighbors of the anchor title
	GET /api/v1/catalog/stats              load and model statistics
	GET /api/v1/stats/performance          per-route latency percentiles
	GET /api/v1/health[/live|/ready]       probes; ready means catalog loaded
	GET /metrics                           Prometheus exposition

Error Handling:

Errors from the recommender are classified with recommend.Classify and
mapped to a status code and a display message:

	NO_MATCH               404  Book not found in dataset.
	DATASET_UNAVAILABLE    503  catalog failed to load (degraded mode)
	RECOMMENDATION_FAILED  500  scoring or ranking fault
	VALIDATION_ERROR       400  bad title or n

Causes are logged with the request ID and never sent to clients.

Degraded Mode:

When the catalog fails to load the server still starts. CatalogState then
has no Recommender, readiness reports 503, and every recommendation request
answers DATASET_UNAVAILABLE.

Usage Example:

	handler := api.NewHandler(cfg, api.CatalogState{
	    Recommender: rec,
	    Stats:       loadStats,
	}, nil)
	srv := &http.Server{
	    Addr:    cfg.Server.Address(),
	    Handler: api.NewRouter(handler).SetupChi(),
	}
*/
package api
