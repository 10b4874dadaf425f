// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/trackviz/internal/api"
	"github.com/tomtom215/trackviz/internal/config"
	"github.com/tomtom215/trackviz/internal/logging"
	"github.com/tomtom215/trackviz/internal/metrics"
	"github.com/tomtom215/trackviz/internal/render"
	"github.com/tomtom215/trackviz/internal/supervisor"
	"github.com/tomtom215/trackviz/internal/supervisor/services"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf("")
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting trackviz")

	start := time.Now()
	metrics.SetAppInfo(version)

	renderer := render.NewService(render.Options{
		CacheSize: cfg.Render.CacheSize,
		CacheTTL:  cfg.Render.CacheTTL,
		PNGRate:   cfg.Render.PNGRate,
		PNGBurst:  cfg.Render.PNGBurst,
		Timeout:   cfg.Render.Timeout,
		Interactive: render.InteractiveOptions{
			AssetsHost: cfg.Render.AssetsHost,
			MapWidth:   cfg.Render.MapWidth,
			MapHeight:  cfg.Render.MapHeight,
		},
	})

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	server := &http.Server{
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	httpSvc := services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout)

	handler := api.NewHandler(api.HandlerConfig{
		Renderer:        renderer,
		MaxPayloadBytes: cfg.Render.MaxPayloadBytes,
		Version:         version,
		Ready:           httpSvc.Ready,
	})
	chiMw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	server.Handler = api.NewRouter(handler, chiMw).SetupChi()

	tree.AddMaintenanceService(services.NewCacheJanitorService(renderer, time.Minute))
	tree.AddMaintenanceService(services.NewUptimeService(start, 15*time.Second))
	tree.AddAPIService(httpSvc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	if len(unstopped) > 0 {
		os.Exit(1)
	}

	logging.Info().Msg("Trackviz stopped")
}
