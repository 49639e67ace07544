// Package server owns the application lifecycle: it starts the refresh
// scheduler and HTTP server, blocks until a shutdown signal, and tears
// everything down in order.
package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/broadcast"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/scheduler"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/config"
	xhttp "github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/http"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/logger"
)

// App encapsulates the whole service.
type App struct {
	cfg   *config.Config
	log   *logger.Logger
	sched *scheduler.Scheduler
	hub   *broadcast.Hub

	httpServer *xhttp.Server
	handlers   []xhttp.Handler
}

// New assembles the application from its wired dependencies.
func New(cfg *config.Config, log *logger.Logger, sched *scheduler.Scheduler, hub *broadcast.Hub, handlers ...xhttp.Handler) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		sched:    sched,
		hub:      hub,
		handlers: handlers,
	}
}

// Run starts everything and blocks until SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	a.httpServer = xhttp.NewServer(
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.log),
	)
	for _, h := range a.handlers {
		a.httpServer.Register(h)
	}

	a.sched.Start(ctx)

	if err := a.httpServer.Start(); err != nil {
		return err
	}
	a.log.Info("service started",
		logger.String("environment", a.cfg.Environment),
		logger.Int("port", a.cfg.Server.Port),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

func (a *App) shutdown(ctx context.Context) error {
	a.sched.Stop()
	a.hub.Close()

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", logger.Error(err))
		return err
	}

	a.log.Info("shutdown complete")
	return nil
}
