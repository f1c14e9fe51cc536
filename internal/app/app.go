// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-landing-promo/internal/bootstrap"
	"github.com/AccelByte/extend-landing-promo/internal/config"
	"github.com/AccelByte/extend-landing-promo/internal/server"
	"github.com/AccelByte/extend-landing-promo/pkg/landing"
	"github.com/AccelByte/extend-landing-promo/pkg/page"
	"github.com/AccelByte/extend-landing-promo/pkg/store"
	"github.com/AccelByte/extend-landing-promo/pkg/timing"

	"github.com/sirupsen/logrus"
)

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	store             store.Store
	loop              *timing.Loop
	document          *page.Document
	behaviors         *bootstrap.Behaviors
	apiServer         *server.APIServer
	grpcServer        *server.GRPCServer
	metricsServer     *server.MetricsServer
	shutdownTelemetry func(context.Context) error
}

// New creates and initializes a new application instance.
//
// ============================================================
// DEVELOPER: Application initialization order
// ============================================================
// Components are initialized in dependency order:
// 1. Page config (YAML configuration)
// 2. Durable store (Redis, SQLite or memory)
// 3. Event loop and page behaviors
// 4. Servers (HTTP API, gRPC health, metrics)
// 5. Telemetry (OpenTelemetry tracing)
//
// Nothing is scheduled until Run; New only builds.
// ============================================================
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	// ============================================================
	// Step 1: Load page configuration
	// ============================================================
	landingConfig, err := landing.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load page config from %s: %w", cfg.ConfigPath, err)
	}
	logrus.Infof("loaded page configuration from %s", cfg.ConfigPath)

	// ============================================================
	// Step 2: Initialize the durable store
	// ============================================================
	app.store, err = bootstrap.InitStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init %s store: %w", cfg.StoreBackend, err)
	}

	// ============================================================
	// Step 3: Build the page and its behaviors
	// ============================================================
	// Every behavior callback runs on the loop goroutine, one at a
	// time, so the countdown never sees two ticks at once.
	// ============================================================
	app.loop = timing.NewLoop()
	app.document = bootstrap.InitDocument(landingConfig, app.loop)
	app.behaviors = bootstrap.InitBehaviors(ctx, landingConfig, app.document, app.loop, app.loop, app.store)

	// ============================================================
	// Step 4: Setup servers
	// ============================================================
	checker := store.NewHealthChecker(app.store)

	app.apiServer = server.NewAPIServer(cfg.HTTPPort, app.document, app.behaviors.Countdown, checker)
	if err := app.apiServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup HTTP API server: %w", err)
	}

	app.grpcServer = server.NewGRPCServer(cfg.GRPCPort, checker)
	if err := app.grpcServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, "/metrics")
	if err := app.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	// ============================================================
	// Step 5: Setup telemetry
	// ============================================================
	if cfg.OtelEnabled {
		shutdownTelemetry, err := server.SetupTelemetry(ctx, cfg.ServiceName, cfg.Environment, 0, cfg.ZipkinEndpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to setup telemetry: %w", err)
		}
		app.shutdownTelemetry = shutdownTelemetry
	}

	logrus.Info("application initialized successfully")

	return app, nil
}
