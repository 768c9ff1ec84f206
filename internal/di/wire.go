//go:build wireinject
// +build wireinject

package di

import (
	"StockScope/pkg/config"
	"StockScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,
		ProvideDB,

		// Provider clients
		ProvideRateLimiter,
		ProvideMarketData,
		ProvideFMPClient,
		ProvideNewsProvider,
		ProvideSymbolSearcher,

		// Repositories
		ProvideNoteStore,
		ProvideWatchlistStore,
		ProvideSessionStore,

		// Use cases
		ProvideGateway,
		ProvideSentimentEstimator,
		ProvideInsightService,
		ProvideStockService,
		ProvideNotesService,
		ProvideWatchlistService,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
