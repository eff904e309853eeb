// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/shelfmatch/internal/api"
	"github.com/tomtom215/shelfmatch/internal/config"
	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/middleware"
	"github.com/tomtom215/shelfmatch/internal/supervisor"
	"github.com/tomtom215/shelfmatch/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Default logger: config not yet available
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	wd, err := os.Getwd()
	if err != nil {
		wd = "unknown"
	}
	logging.Info().
		Str("version", api.Version).
		Str("working_dir", wd).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Shelfmatch with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// === CATALOG AND RECOMMENDER ===
	state, rec := initCatalog(ctx, cfg, logging.Logger())
	if !state.Available() {
		logging.Error().
			Err(state.Err).
			Str("path", cfg.Catalog.Path).
			Msg("Catalog unavailable, serving in degraded mode")
	}

	// === HTTP ===
	handler := api.NewHandler(cfg, state, middleware.NewPerformanceMonitor(1000, time.Second))
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===
	// slog bridge for sutureslog. The tree waits a little longer than the
	// HTTP drain so a clean shutdown is never reported as unstopped.
	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout + 5*time.Second
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if rec != nil && cfg.Recommend.CacheEnabled {
		tree.AddMaintenanceService(services.NewCacheCleanupService(rec, cfg.Recommend.CacheCleanupInterval, logging.WithComponent("cache-cleanup")))
		logging.Info().Dur("interval", cfg.Recommend.CacheCleanupInterval).Msg("Cache cleanup service added")
	}

	// === START ===
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
