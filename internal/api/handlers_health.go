// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shelfmatch/internal/models"
)

// healthStatus builds the shared health payload.
func (h *Handler) healthStatus() models.HealthStatus {
	status := "healthy"
	items := 0
	if h.state.Available() {
		items = h.state.Recommender.Stats().Items
	} else {
		status = "degraded"
	}
	return models.HealthStatus{
		Status:        status,
		Version:       Version,
		CatalogLoaded: h.state.Available(),
		CatalogItems:  items,
		Uptime:        time.Since(h.startTime).Seconds(),
	}
}

// Health handles GET /api/v1/health. It always answers 200; status is
// "degraded" when the catalog is missing.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.healthStatus(), models.Metadata{})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of the catalog.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only when the catalog is loaded, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := h.healthStatus()

	statusCode := http.StatusOK
	status := "ready"
	if !health.CatalogLoaded {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
