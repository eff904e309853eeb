// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package supervisor runs the long-lived parts of Shelfmatch under a suture v4
supervisor tree.

	RootSupervisor ("shelfmatch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheCleanupService (if the result cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with backoff. Cancelling the context passed to
Serve shuts the tree down, giving each service ShutdownTimeout to return.
Supervisor events are logged through sutureslog; pass logging.NewSlogLogger()
so they land in the zerolog stream.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(services.NewCacheCleanupService(rec, time.Minute, logger))
	return tree.Serve(ctx)
*/
package supervisor
