package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	applogger "StockScope/pkg/logger"
	"StockScope/pkg/util"
)

const newsLimit = 5

// MarketDataGateway normalizes the external quote/profile/history/news
// providers into a single stock-detail record. Each sub-fetch degrades
// independently: a failed slice keeps its default instead of failing
// the whole call.
type MarketDataGateway struct {
	market  drepo.MarketData
	news    drepo.NewsProvider
	metrics drepo.Metrics
	logger  *applogger.Logger
	now     func() time.Time
}

// NewMarketDataGateway creates a gateway.
func NewMarketDataGateway(market drepo.MarketData, news drepo.NewsProvider, metrics drepo.Metrics, l *applogger.Logger) *MarketDataGateway {
	return &MarketDataGateway{
		market:  market,
		news:    news,
		metrics: metrics,
		logger:  l,
		now:     time.Now,
	}
}

// Detail fetches quote, profile, one year of daily bars, and recent news
// concurrently. Only an empty symbol fails the call.
func (g *MarketDataGateway) Detail(ctx context.Context, symbol string) (*models.StockDetail, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	detail := models.DefaultStockDetail(symbol)
	from, to := util.YearRange(g.now())

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		quote, err := g.market.Quote(ctx, symbol)
		if err != nil {
			g.degrade(symbol, "quote", err)
			return
		}
		detail.CurrentQuote = *quote
		g.metrics.RecordLastPrice(symbol, quote.Price)
	}()

	go func() {
		defer wg.Done()
		profile, err := g.market.Profile(ctx, symbol)
		if err != nil {
			g.degrade(symbol, "profile", err)
			return
		}
		fillProfile(&detail.Profile, profile)
	}()

	go func() {
		defer wg.Done()
		series, err := g.market.History(ctx, symbol, from, to)
		if err != nil {
			g.degrade(symbol, "history", err)
			return
		}
		detail.HistoricalPrices = series
	}()

	go func() {
		defer wg.Done()
		news, err := g.news.News(ctx, symbol, newsLimit)
		if err != nil {
			g.degrade(symbol, "news", err)
			return
		}
		detail.News = news
	}()

	wg.Wait()
	return detail, nil
}

// History fetches the one-year daily series alone.
func (g *MarketDataGateway) History(ctx context.Context, symbol string) (models.HistorySeries, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	from, to := util.YearRange(g.now())
	g.metrics.RecordProviderCall("market", "history")
	series, err := g.market.History(ctx, symbol, from, to)
	if err != nil {
		g.metrics.RecordProviderError("market", "history")
		return nil, fmt.Errorf("history %s: %w", symbol, err)
	}
	return series, nil
}

// Summary fetches the quote+profile pair for one tracked symbol.
func (g *MarketDataGateway) Summary(ctx context.Context, symbol string) (*models.StockSummary, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	quote, err := g.market.Quote(ctx, symbol)
	if err != nil {
		g.metrics.RecordProviderError("market", "quote")
		return nil, fmt.Errorf("summary quote %s: %w", symbol, err)
	}
	g.metrics.RecordLastPrice(symbol, quote.Price)

	summary := &models.StockSummary{
		Symbol:    symbol,
		Name:      symbol,
		LastClose: quote.Price,
		Industry:  "Unknown",
		Sector:    "Unknown",
	}

	// Profile degradation keeps the row with Unknown fields.
	if profile, err := g.market.Profile(ctx, symbol); err == nil {
		if profile.Name != "" {
			summary.Name = profile.Name
		}
		if profile.Industry != "" {
			summary.Industry = profile.Industry
		}
		if profile.Sector != "" {
			summary.Sector = profile.Sector
		}
	} else {
		g.degrade(symbol, "profile", err)
	}

	return summary, nil
}

func (g *MarketDataGateway) degrade(symbol, operation string, err error) {
	g.metrics.RecordProviderError("market", operation)
	if g.logger != nil {
		g.logger.Warn("provider fetch degraded",
			applogger.String("symbol", symbol),
			applogger.String("operation", operation),
			applogger.Error(err),
		)
	}
}

func fillProfile(dst *models.Profile, src *models.Profile) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Industry != "" {
		dst.Industry = src.Industry
	}
	if src.Sector != "" {
		dst.Sector = src.Sector
	}
	if src.Country != "" {
		dst.Country = src.Country
	}
	if src.Website != "" {
		dst.Website = src.Website
	}
}
