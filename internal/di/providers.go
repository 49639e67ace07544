// Package di wires the application graph.
package di

import (
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/broadcast"
	domrepo "github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/repository"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/handler/api"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/handler/ws"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/refdata"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/scheduler"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/usecase"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/config"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/logger"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/metrics"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideTables loads the static reference tables.
func ProvideTables() *refdata.Tables {
	return refdata.Load()
}

// ProvideIntelligence creates the query facade.
func ProvideIntelligence(cfg *config.Config, tables *refdata.Tables, log *logger.Logger, m domrepo.Metrics) *usecase.Intelligence {
	return usecase.NewIntelligence(tables, log, m,
		usecase.WithCacheTTL(cfg.Cache.TTL),
	)
}

// ProvideHub creates the broadcast subscriber registry.
func ProvideHub(cfg *config.Config, log *logger.Logger, m domrepo.Metrics) *broadcast.Hub {
	return broadcast.NewHub(cfg.Simulator.SubscriberBuffer, cfg.Simulator.SendTimeout, log, m)
}

// ProvideScheduler creates the refresh/broadcast scheduler.
func ProvideScheduler(cfg *config.Config, svc *usecase.Intelligence, hub *broadcast.Hub, log *logger.Logger) *scheduler.Scheduler {
	return scheduler.New(svc, hub, cfg.Simulator.RefreshInterval, cfg.Simulator.BroadcastInterval, log)
}

// ProvideAPIHandler creates the HTTP query handler.
func ProvideAPIHandler(log *logger.Logger, svc *usecase.Intelligence) *api.IntelligenceHandler {
	return api.NewIntelligenceHandler(log, svc)
}

// ProvideWSGateway creates the websocket streaming gateway.
func ProvideWSGateway(hub *broadcast.Hub, svc *usecase.Intelligence, log *logger.Logger) *ws.Gateway {
	return ws.NewGateway(hub, svc, log)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	sched *scheduler.Scheduler,
	hub *broadcast.Hub,
	apiHandler *api.IntelligenceHandler,
	gateway *ws.Gateway,
) *server.App {
	return server.New(cfg, log, sched, hub, apiHandler, gateway)
}
