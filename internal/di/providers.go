package di

import (
	"fmt"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	dsvc "StockScope/internal/domain/service"
	"StockScope/internal/handler/api"
	internalrepo "StockScope/internal/repository"
	"StockScope/internal/service/fmp"
	"StockScope/internal/service/ratelimit"
	"StockScope/internal/service/yahoo"
	"StockScope/internal/usecase"
	"StockScope/pkg/cache"
	"StockScope/pkg/config"
	xhttp "StockScope/pkg/http"
	applogger "StockScope/pkg/logger"
	"StockScope/pkg/metrics"
	"StockScope/pkg/server"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCache creates the cache backend. Redis when enabled, otherwise
// an in-process LRU so the app runs without any infrastructure.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Redis.Enabled {
		c, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Redis.Host),
			cache.WithRedisPort(cfg.Redis.Port),
			cache.WithRedisPassword(cfg.Redis.Password),
			cache.WithRedisDB(cfg.Redis.DB),
			cache.WithRedisPrefix(cfg.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideDB opens the Postgres connection and migrates the user-data tables.
func ProvideDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Note{}, &models.WatchlistEntry{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideRateLimiter creates the shared provider-side token bucket.
func ProvideRateLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideMarketData creates the Yahoo Finance client.
func ProvideMarketData(cfg *config.Config, limiter *ratelimit.Limiter) drepo.MarketData {
	return yahoo.New(
		cfg.Providers.Quote.BaseURL,
		cfg.Providers.Quote.Timeout,
		limiter,
		yahoo.WithRateLimit(cfg.Providers.RateLimit.Capacity, cfg.Providers.RateLimit.RefillPerSec),
	)
}

// ProvideFMPClient creates the Financial Modeling Prep client.
func ProvideFMPClient(cfg *config.Config, limiter *ratelimit.Limiter) *fmp.Client {
	return fmp.New(
		cfg.Providers.News.BaseURL,
		cfg.Providers.News.APIKey,
		cfg.Providers.News.Timeout,
		limiter,
		fmp.WithRateLimit(cfg.Providers.RateLimit.Capacity, cfg.Providers.RateLimit.RefillPerSec),
	)
}

// ProvideNewsProvider exposes the FMP client as the news source.
func ProvideNewsProvider(c *fmp.Client) drepo.NewsProvider {
	return c
}

// ProvideSymbolSearcher exposes the FMP client as the ticker search source.
func ProvideSymbolSearcher(c *fmp.Client) drepo.SymbolSearcher {
	return c
}

// ProvideNoteStore creates the Postgres-backed note repository.
func ProvideNoteStore(db *gorm.DB) drepo.NoteStore {
	return internalrepo.NewGormNoteStore(db)
}

// ProvideWatchlistStore creates the Postgres-backed watchlist repository.
func ProvideWatchlistStore(db *gorm.DB) drepo.WatchlistStore {
	return internalrepo.NewGormWatchlistStore(db)
}

// ProvideSessionStore resolves bearer tokens against the cache backend.
func ProvideSessionStore(c cache.Service) drepo.SessionStore {
	return internalrepo.NewCacheSessionStore(c)
}

// ProvideGateway creates the market data aggregation gateway.
func ProvideGateway(market drepo.MarketData, news drepo.NewsProvider, m drepo.Metrics, l *applogger.Logger) *usecase.MarketDataGateway {
	return usecase.NewMarketDataGateway(market, news, m, l)
}

// ProvideSentimentEstimator creates the placeholder sentiment source.
func ProvideSentimentEstimator() dsvc.SentimentEstimator {
	return usecase.NewRandomSentimentEstimator()
}

// ProvideInsightService creates the insight derivation service.
func ProvideInsightService(gateway *usecase.MarketDataGateway, estimator dsvc.SentimentEstimator, l *applogger.Logger) *usecase.InsightService {
	return usecase.NewInsightService(gateway, estimator, l)
}

// ProvideStockService creates the tracked-stock listing and search service.
func ProvideStockService(gateway *usecase.MarketDataGateway, searcher drepo.SymbolSearcher, c cache.Service, l *applogger.Logger, cfg *config.Config) *usecase.StockService {
	return usecase.NewStockService(gateway, searcher, c, l,
		cfg.Stocks.Tracked,
		cfg.Stocks.ListParallel,
		cfg.Stocks.ListCacheTTL,
	)
}

// ProvideNotesService creates the notes service.
func ProvideNotesService(store drepo.NoteStore) *usecase.NotesService {
	return usecase.NewNotesService(store)
}

// ProvideWatchlistService creates the watchlist service.
func ProvideWatchlistService(store drepo.WatchlistStore) *usecase.WatchlistService {
	return usecase.NewWatchlistService(store)
}

// ProvideHandler combines the public and authenticated route groups.
func ProvideHandler(
	l *applogger.Logger,
	stocks *usecase.StockService,
	gateway *usecase.MarketDataGateway,
	insights *usecase.InsightService,
	notes *usecase.NotesService,
	watchlist *usecase.WatchlistService,
	sessions drepo.SessionStore,
) xhttp.Handler {
	return xhttp.HandlerGroup{
		api.NewStocksEchoHandler(l, stocks, gateway, insights),
		api.NewNotesEchoHandler(l, notes, watchlist, sessions),
	}
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, c cache.Service) *server.App {
	return server.New(cfg, l, handler, c)
}
