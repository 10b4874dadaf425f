// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

/*
Package supervisor runs the long-lived trackviz services under suture v4.

# Tree

	trackviz
	├── maintenance-layer
	│   ├── cache-janitor   (sweeps expired render cache entries)
	│   └── uptime          (keeps trackviz_app_uptime_seconds current)
	└── api-layer
	    └── http-server

Each layer counts failures on its own. A janitor that panics in a loop
backs off inside the maintenance layer and the HTTP server keeps serving.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{})
	if err != nil {
		return err
	}
	tree.AddMaintenanceService(services.NewCacheJanitorService(svc, time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(srv, ":8080", 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

Zero fields in TreeConfig take suture's defaults (threshold 5, decay 30s,
backoff 15s) and a 10s per-service shutdown timeout.

# Logging

Supervisor events (restarts, backoff, services that miss the shutdown
timeout) go through sutureslog into the slog logger passed to
NewSupervisorTree. logging.NewSlogLogger bridges that onto zerolog.

# Services

Implementations live in the services subpackage.
*/
package supervisor
