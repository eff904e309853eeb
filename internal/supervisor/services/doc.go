// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package services provides suture.Service wrappers for Shelfmatch components.
//
//   - HTTPServerService: ListenAndServe/Shutdown translated to Serve(ctx)
//   - CacheCleanupService: periodic sweep of expired recommendation results
//
// Each wrapper implements fmt.Stringer so supervisor events name it.
package services
