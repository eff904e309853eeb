// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package models

// HealthStatus represents the health check response
type HealthStatus struct {
	Status        string  `json:"status"` // "healthy" or "degraded"
	Version       string  `json:"version"`
	CatalogLoaded bool    `json:"catalog_loaded"`
	CatalogItems  int     `json:"catalog_items"`
	Uptime        float64 `json:"uptime_seconds"`
}
