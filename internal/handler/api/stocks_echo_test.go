package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StockScope/internal/domain/models"
	"StockScope/internal/usecase"
	applogger "StockScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

type fakeMarketData struct {
	quote   *models.Quote
	history models.HistorySeries
}

func (f *fakeMarketData) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	if f.quote == nil {
		return nil, fmt.Errorf("no quote for %s", symbol)
	}
	return f.quote, nil
}

func (f *fakeMarketData) Profile(ctx context.Context, symbol string) (*models.Profile, error) {
	return &models.Profile{Name: symbol + " Inc."}, nil
}

func (f *fakeMarketData) History(ctx context.Context, symbol, from, to string) (models.HistorySeries, error) {
	return f.history, nil
}

type fakeNews struct{}

func (fakeNews) News(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error) {
	return nil, nil
}

type fakeSearcher struct {
	results []models.SearchResult
}

func (f *fakeSearcher) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	return f.results, nil
}

type fakeMetrics struct{}

func (fakeMetrics) RecordProviderCall(provider, operation string)  {}
func (fakeMetrics) RecordProviderError(provider, operation string) {}
func (fakeMetrics) RecordLastPrice(symbol string, price float64)   {}
func (fakeMetrics) RecordLatency(op string, seconds float64)       {}

type fixedEstimator struct{}

func (fixedEstimator) Estimate(ctx context.Context, symbol string) (models.SentimentEstimate, error) {
	return models.SentimentEstimate{OverallPrediction: models.SentimentBullish, Confidence: 70}, nil
}

func barSeries(n int, close float64) models.HistorySeries {
	series := make(models.HistorySeries, n)
	for i := range series {
		series[i] = models.PriceBar{
			Date:   fmt.Sprintf("2024-02-%02d", i+1),
			Close:  close,
			Volume: 1000,
		}
	}
	return series
}

func newStocksTestServer(t *testing.T, market *fakeMarketData, searcher *fakeSearcher) *echo.Echo {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	gateway := usecase.NewMarketDataGateway(market, fakeNews{}, fakeMetrics{}, l)
	stocks := usecase.NewStockService(gateway, searcher, nil, l, []string{"AAPL"}, 1, time.Minute)
	insights := usecase.NewInsightService(gateway, fixedEstimator{}, l)

	e := echo.New()
	NewStocksEchoHandler(l, stocks, gateway, insights).RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	e := newStocksTestServer(t, &fakeMarketData{}, &fakeSearcher{})
	rec := doRequest(e, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestListEnvelope(t *testing.T) {
	market := &fakeMarketData{quote: &models.Quote{Price: 187.32}}
	e := newStocksTestServer(t, market, &fakeSearcher{})

	rec := doRequest(e, http.MethodGet, "/api/stocks")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Status  int                   `json:"status"`
		Message string                `json:"message"`
		Data    []models.StockSummary `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusOK || envelope.Message != "OK" {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Symbol != "AAPL" {
		t.Errorf("unexpected data: %+v", envelope.Data)
	}
}

func TestSearchMissingQuery(t *testing.T) {
	e := newStocksTestServer(t, &fakeMarketData{}, &fakeSearcher{})
	rec := doRequest(e, http.MethodGet, "/api/stocks/search")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearchPassthrough(t *testing.T) {
	searcher := &fakeSearcher{results: []models.SearchResult{{Symbol: "AAPL", Name: "Apple Inc."}}}
	e := newStocksTestServer(t, &fakeMarketData{}, searcher)

	rec := doRequest(e, http.MethodGet, "/api/stocks/search?name=apple")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestDetailAlwaysSucceeds(t *testing.T) {
	// Every provider failing still yields a defaulted detail record.
	e := newStocksTestServer(t, &fakeMarketData{}, &fakeSearcher{})

	rec := doRequest(e, http.MethodGet, "/api/stocks/AAPL")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data models.StockDetail `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Profile.Website != "#" {
		t.Errorf("expected defaulted profile, got %+v", envelope.Data.Profile)
	}
}

func TestInsightsNotFound(t *testing.T) {
	e := newStocksTestServer(t, &fakeMarketData{}, &fakeSearcher{})
	rec := doRequest(e, http.MethodGet, "/api/stocks/NOPE/insights")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty history, got %d", rec.Code)
	}
}

func TestInsightsPayload(t *testing.T) {
	market := &fakeMarketData{history: barSeries(10, 100)}
	e := newStocksTestServer(t, market, &fakeSearcher{})

	rec := doRequest(e, http.MethodGet, "/api/stocks/AAPL/insights")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data models.InsightsResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Recommendation == nil {
		t.Fatal("expected a recommendation at 10 bars")
	}
	if envelope.Data.Sentiment.OverallPrediction != models.SentimentBullish {
		t.Errorf("unexpected sentiment: %+v", envelope.Data.Sentiment)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	market := &fakeMarketData{history: barSeries(3, 42)}
	e := newStocksTestServer(t, market, &fakeSearcher{})

	rec := doRequest(e, http.MethodGet, "/api/stocks/AAPL/history")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data models.StockHistory `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Symbol != "AAPL" || len(envelope.Data.History) != 3 {
		t.Errorf("unexpected payload: %+v", envelope.Data)
	}
}
