package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	"StockScope/pkg/cache"
	applogger "StockScope/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	searchLimit       = 10
	stockListCacheKey = "stocks:list"
)

// StockService serves the tracked-symbol list and provider search.
type StockService struct {
	gateway  *MarketDataGateway
	searcher drepo.SymbolSearcher
	cache    cache.Service
	logger   *applogger.Logger

	tracked  []string
	parallel int
	cacheTTL time.Duration
}

// NewStockService creates a stock service.
func NewStockService(gateway *MarketDataGateway, searcher drepo.SymbolSearcher, c cache.Service, l *applogger.Logger, tracked []string, parallel int, cacheTTL time.Duration) *StockService {
	if parallel <= 0 {
		parallel = 4
	}
	return &StockService{
		gateway:  gateway,
		searcher: searcher,
		cache:    c,
		logger:   l,
		tracked:  tracked,
		parallel: parallel,
		cacheTTL: cacheTTL,
	}
}

// List returns summaries for the tracked symbols. Symbols are fetched
// with bounded concurrency; a symbol whose quote fails is skipped, it
// does not fail the list. The assembled list is briefly cached.
func (s *StockService) List(ctx context.Context) ([]models.StockSummary, error) {
	if s.cache != nil && s.cacheTTL > 0 {
		var cached []models.StockSummary
		if err := s.cache.Get(ctx, stockListCacheKey, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("stock list cache read failed", applogger.Error(err))
		}
	}

	results := make([]*models.StockSummary, len(s.tracked))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)
	for i, symbol := range s.tracked {
		g.Go(func() error {
			summary, err := s.gateway.Summary(gctx, symbol)
			if err != nil {
				s.logger.Warn("tracked symbol skipped",
					applogger.String("symbol", symbol),
					applogger.Error(err),
				)
				return nil
			}
			results[i] = summary
			return nil
		})
	}
	// Goroutines only return nil; the group is used for joining and
	// bounded concurrency.
	_ = g.Wait()

	summaries := make([]models.StockSummary, 0, len(results))
	for _, r := range results {
		if r != nil {
			summaries = append(summaries, *r)
		}
	}

	if s.cache != nil && s.cacheTTL > 0 && len(summaries) > 0 {
		if err := s.cache.Set(ctx, stockListCacheKey, summaries, s.cacheTTL); err != nil {
			s.logger.Warn("stock list cache write failed", applogger.Error(err))
		}
	}

	return summaries, nil
}

// Search runs the provider-passthrough ticker search.
func (s *StockService) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}
	if limit <= 0 || limit > searchLimit {
		limit = searchLimit
	}

	results, err := s.searcher.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return results, nil
}
