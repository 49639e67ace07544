//go:build wireinject
// +build wireinject

package di

import (
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/config"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation in wire_gen.go.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideTables,

		ProvideIntelligence,
		ProvideHub,
		ProvideScheduler,

		ProvideAPIHandler,
		ProvideWSGateway,

		ProvideApp,
	)
	return &server.App{}, nil
}
