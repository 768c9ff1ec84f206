package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"StockScope/internal/domain/models"
	"StockScope/pkg/cache"
	applogger "StockScope/pkg/logger"
)

// symbolMarketData serves quotes per symbol; unknown symbols error the
// way a provider 404 would.
type symbolMarketData struct {
	quotes map[string]*models.Quote
}

func (s *symbolMarketData) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	q, ok := s.quotes[symbol]
	if !ok {
		return nil, fmt.Errorf("no quote for %s", symbol)
	}
	return q, nil
}

func (s *symbolMarketData) Profile(ctx context.Context, symbol string) (*models.Profile, error) {
	return &models.Profile{Name: symbol + " Inc."}, nil
}

func (s *symbolMarketData) History(ctx context.Context, symbol, from, to string) (models.HistorySeries, error) {
	return nil, nil
}

type stubSearcher struct {
	results []models.SearchResult
	err     error
}

func (s *stubSearcher) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newStockService(t *testing.T, market *symbolMarketData, tracked []string, c cache.Service, ttl time.Duration) *StockService {
	t.Helper()
	gateway := NewMarketDataGateway(market, &stubNews{}, noopMetrics{}, nil)
	return NewStockService(gateway, &stubSearcher{}, c, testLogger(t), tracked, 2, ttl)
}

func TestListSkipsFailedSymbols(t *testing.T) {
	market := &symbolMarketData{quotes: map[string]*models.Quote{
		"AAPL": {Price: 187.32},
		"TSLA": {Price: 244.10},
	}}

	svc := newStockService(t, market, []string{"AAPL", "DOWN", "TSLA"}, nil, 0)

	summaries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d: %+v", len(summaries), summaries)
	}

	// Tracked order is preserved even with bounded concurrency.
	if summaries[0].Symbol != "AAPL" || summaries[1].Symbol != "TSLA" {
		t.Errorf("order lost: %+v", summaries)
	}
	if summaries[0].LastClose != 187.32 {
		t.Errorf("unexpected quote: %+v", summaries[0])
	}
	if summaries[0].Name != "AAPL Inc." {
		t.Errorf("profile not applied: %+v", summaries[0])
	}
}

func TestListServesFromCache(t *testing.T) {
	market := &symbolMarketData{quotes: map[string]*models.Quote{
		"AAPL": {Price: 100},
	}}
	c := cache.NewMemoryCache()
	defer c.Close()

	svc := newStockService(t, market, []string{"AAPL"}, c, time.Minute)

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A provider change must not show through while the cache is warm.
	market.quotes["AAPL"] = &models.Quote{Price: 999}

	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0].LastClose != first[0].LastClose {
		t.Errorf("expected cached price %.2f, got %.2f", first[0].LastClose, second[0].LastClose)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newStockService(t, &symbolMarketData{}, nil, nil, 0)
	if _, err := svc.Search(context.Background(), "   ", 10); err == nil {
		t.Fatal("expected error for blank query")
	}
}

func TestSearchNilResults(t *testing.T) {
	gateway := NewMarketDataGateway(&symbolMarketData{}, &stubNews{}, noopMetrics{}, nil)
	svc := NewStockService(gateway, &stubSearcher{results: nil}, nil, testLogger(t), nil, 1, 0)

	results, err := svc.Search(context.Background(), "apple", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", results)
	}
}

func TestSearchProviderError(t *testing.T) {
	gateway := NewMarketDataGateway(&symbolMarketData{}, &stubNews{}, noopMetrics{}, nil)
	svc := NewStockService(gateway, &stubSearcher{err: errors.New("upstream 500")}, nil, testLogger(t), nil, 1, 0)

	if _, err := svc.Search(context.Background(), "apple", 10); err == nil {
		t.Fatal("expected provider error to surface")
	}
}
