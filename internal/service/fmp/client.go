package fmp

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	"StockScope/internal/service/ratelimit"
	xhttp "StockScope/pkg/http"
)

const providerName = "fmp"

// Client fetches stock news and runs ticker search against a Financial
// Modeling Prep compatible API.
type Client struct {
	baseURL string
	apiKey  string
	http    *xhttp.Client
	limiter *ratelimit.Limiter

	rateCapacity float64
	rateRefill   float64
}

type Option func(*Client)

// WithRateLimit sets the client-side token bucket parameters.
func WithRateLimit(capacity, refillPerSec float64) Option {
	return func(c *Client) {
		c.rateCapacity = capacity
		c.rateRefill = refillPerSec
	}
}

// New creates an FMP client.
func New(baseURL, apiKey string, timeout time.Duration, limiter *ratelimit.Limiter, opts ...Option) *Client {
	c := &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		http:         xhttp.NewClient(xhttp.WithTimeout(timeout)),
		limiter:      limiter,
		rateCapacity: 5,
		rateRefill:   1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type newsArticle struct {
	Title         string `json:"title"`
	Site          string `json:"site"`
	URL           string `json:"url"`
	PublishedDate string `json:"publishedDate"`
}

// News returns up to limit recent articles for symbol.
func (c *Client) News(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error) {
	var articles []newsArticle
	if err := c.get(ctx, c.baseURL+"/v3/stock_news", map[string][]string{
		"tickers": {symbol},
		"limit":   {strconv.Itoa(limit)},
		"apikey":  {c.apiKey},
	}, &articles); err != nil {
		return nil, fmt.Errorf("fmp news %s: %w", symbol, err)
	}

	if len(articles) > limit {
		articles = articles[:limit]
	}

	items := make([]models.NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, models.NewsItem{
			Title:       a.Title,
			Publisher:   a.Site,
			Link:        a.URL,
			PublishedAt: a.PublishedDate,
		})
	}
	return items, nil
}

// Search runs a provider-passthrough ticker search.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	var results []models.SearchResult
	if err := c.get(ctx, c.baseURL+"/v3/search-ticker", map[string][]string{
		"query":  {query},
		"limit":  {strconv.Itoa(limit)},
		"apikey": {c.apiKey},
	}, &results); err != nil {
		return nil, fmt.Errorf("fmp search %q: %w", query, err)
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (c *Client) get(ctx context.Context, url string, query map[string][]string, dest interface{}) error {
	if c.limiter != nil && !c.limiter.Allow(providerName, c.rateCapacity, c.rateRefill) {
		return fmt.Errorf("rate limited")
	}
	return c.http.GetJSON(ctx, url, query, dest)
}

var (
	_ drepo.NewsProvider   = (*Client)(nil)
	_ drepo.SymbolSearcher = (*Client)(nil)
)
