// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/config"
	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/router"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/cron"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/metrics"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/shutdown"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/trace"
	"go.uber.org/zap"
)

type App struct {
	HttpApp *fiber.App
	Metrics *metrics.Server
	Cron    *cron.Scheduler
	Drain   *shutdown.Manager
	Logger  *zap.Logger
	AppConf config.AppConfig
}

// InitAppFunc init app function type
type InitAppFunc func(configPath string, logger *zap.Logger) (*App, func(), error)

func NewApp(
	rt *router.Router,
	logger *zap.Logger,
	metricsServer *metrics.Server,
	scheduler *cron.Scheduler,
	drain *shutdown.Manager,
	appConf *config.AppConfig,
) (*App, func(), error) {
	httpApp := rt.Router()

	cleanup := func() {
		if scheduler != nil {
			logger.Info("Stopping cron scheduler...")
			scheduler.Stop()
		}
	}

	app := &App{
		HttpApp: httpApp,
		Metrics: metricsServer,
		Cron:    scheduler,
		Drain:   drain,
		Logger:  logger,
		AppConf: *appConf,
	}
	return app, cleanup, nil
}

// Bootstrap init app, return App instance and cleanup function
func Bootstrap(configFile string, initApp InitAppFunc) (*App, func(), config.AppConfig, error) {
	// load config
	appConf := config.NewConf(configFile)

	// init logger
	logger, err := log.NewLog(&appConf.Log)
	if err != nil {
		return nil, nil, appConf, err
	}

	// init tracer, noop when disabled
	traceShutdown, err := trace.InitTracerProvider(context.Background(), appConf.Trace)
	if err != nil {
		return nil, nil, appConf, err
	}

	// Wire build App
	app, cleanup, err := initApp(configFile, logger)
	if err != nil {
		_ = traceShutdown(context.Background())
		return nil, nil, appConf, err
	}

	withTrace := func() {
		cleanup()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := traceShutdown(ctx); err != nil {
			logger.Sugar().Warnw("tracer shutdown failed", "error", err)
		}
	}
	return app, withTrace, appConf, nil
}

// Run start app and wait for exit signal, then gracefully shutdown
func Run(app *App, cleanup func()) {
	logger := app.Logger
	appConf := app.AppConf

	if app.Metrics != nil {
		if err := app.Metrics.Start(); err != nil {
			logger.Sugar().Errorw("metrics server failed to start", "error", err)
		}
	}
	if app.Cron != nil {
		app.Cron.Start()
	}

	// set signal listener (graceful shutdown)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// start HTTP server (async)
	go func() {
		addr := appConf.Http.Addr()
		logger.Sugar().Infow("HTTP listener started", "address", addr)
		if err := app.HttpApp.Listen(addr); err != nil {
			logger.Sugar().Errorw("HTTP listener failed",
				"address", addr,
				"error", err,
			)
		}
	}()

	// wait for exit signal
	sig := <-quit
	logger.Sugar().Infof("Received signal: %v, shutting down gracefully...", sig)
	if app.Drain != nil {
		app.Drain.Begin()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(appConf.Http.ShutdownTimeout)*time.Second)
	defer shutdownCancel()
	if err := app.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Sugar().Errorf("HTTP server shutdown error: %v", err)
	} else {
		logger.Info("HTTP server shut down gracefully")
	}

	if app.Metrics != nil {
		if err := app.Metrics.Stop(shutdownCtx); err != nil {
			logger.Sugar().Errorf("metrics server shutdown error: %v", err)
		}
	}

	// close scheduler, database, cache and tracer
	cleanup()

	logger.Info("Server shutdown complete")
}
