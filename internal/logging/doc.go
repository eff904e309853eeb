// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package logging provides the process-wide zerolog logger for Shelfmatch.
//
// The package owns a single global logger configured once from main() via
// Init. Components derive child loggers with WithComponent so every line
// carries a "component" field (catalog, recommend, api, supervisor).
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("path", path).Msg("catalog loaded")
//
//	// Request-scoped logging picks up request_id and correlation_id
//	logging.Ctx(ctx).Debug().Msg("recommendation served")
//
// # Output Formats
//
//   - json: one JSON object per line, for log shippers
//   - console: human-readable, for local development
//
// # slog Bridge
//
// The supervisor tree (suture + sutureslog) expects an *slog.Logger.
// NewSlogLogger returns one that writes through zerolog, so supervisor
// events end up in the same stream with the same field names.
//
// Always terminate event chains with Msg or Send; an unterminated chain is
// silently dropped.
package logging
