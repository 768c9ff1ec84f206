package yahoo

import (
	"context"
	"fmt"
	"time"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	"StockScope/internal/service/ratelimit"
	xhttp "StockScope/pkg/http"
	"StockScope/pkg/util"

	"github.com/guregu/null/v6"
)

const providerName = "yahoo"

// Client fetches quotes, company profiles, and daily history from a
// Yahoo-chart-compatible API.
type Client struct {
	baseURL string
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

// New creates a Yahoo market-data client.
func New(baseURL string, timeout time.Duration, limiter *ratelimit.Limiter, opts ...Option) *Client {
	c := &Client{
		baseURL:      baseURL,
		http:         xhttp.NewClient(xhttp.WithTimeout(timeout)),
		limiter:      limiter,
		rateCapacity: 10,
		rateRefill:   2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chartResponse mirrors the Yahoo v8 chart payload. Price arrays carry
// JSON nulls for non-trading slots, hence the null types.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  any           `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Symbol             string  `json:"symbol"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
		PreviousClose      float64 `json:"chartPreviousClose"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []null.Float `json:"open"`
			High   []null.Float `json:"high"`
			Low    []null.Float `json:"low"`
			Close  []null.Float `json:"close"`
			Volume []null.Int   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				Industry string `json:"industry"`
				Sector   string `json:"sector"`
				Country  string `json:"country"`
				Website  string `json:"website"`
			} `json:"assetProfile"`
			Price struct {
				ShortName string `json:"shortName"`
				LongName  string `json:"longName"`
			} `json:"price"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteSummary"`
}

// Quote returns the latest quote for symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	var resp chartResponse
	if err := c.get(ctx, fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, symbol), map[string][]string{
		"range":    {"1d"},
		"interval": {"1d"},
	}, &resp); err != nil {
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}

	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo quote %s: empty result", symbol)
	}

	meta := resp.Chart.Result[0].Meta
	q := &models.Quote{Price: meta.RegularMarketPrice}
	if meta.PreviousClose > 0 {
		q.Change = meta.RegularMarketPrice - meta.PreviousClose
		q.ChangePercent = q.Change / meta.PreviousClose * 100
	}
	return q, nil
}

// Profile returns the company profile for symbol.
func (c *Client) Profile(ctx context.Context, symbol string) (*models.Profile, error) {
	var resp summaryResponse
	if err := c.get(ctx, fmt.Sprintf("%s/v10/finance/quoteSummary/%s", c.baseURL, symbol), map[string][]string{
		"modules": {"assetProfile,price"},
	}, &resp); err != nil {
		return nil, fmt.Errorf("yahoo profile %s: %w", symbol, err)
	}

	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo profile %s: empty result", symbol)
	}

	r := resp.QuoteSummary.Result[0]
	p := &models.Profile{
		Name:     r.Price.ShortName,
		Symbol:   symbol,
		Industry: r.AssetProfile.Industry,
		Sector:   r.AssetProfile.Sector,
		Country:  r.AssetProfile.Country,
		Website:  r.AssetProfile.Website,
	}
	if p.Name == "" {
		p.Name = r.Price.LongName
	}
	return p, nil
}

// History returns daily bars for symbol between the from/to calendar
// dates, ascending by date. Fully-null slots (holidays) are skipped.
func (c *Client) History(ctx context.Context, symbol, from, to string) (models.HistorySeries, error) {
	fromT, ok := util.ParseDate(from)
	if !ok {
		return nil, fmt.Errorf("yahoo history %s: bad from date %q", symbol, from)
	}
	toT, ok := util.ParseDate(to)
	if !ok {
		return nil, fmt.Errorf("yahoo history %s: bad to date %q", symbol, to)
	}

	var resp chartResponse
	if err := c.get(ctx, fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, symbol), map[string][]string{
		"period1":  {fmt.Sprintf("%d", fromT.Unix())},
		"period2":  {fmt.Sprintf("%d", toT.AddDate(0, 0, 1).Unix())},
		"interval": {"1d"},
	}, &resp); err != nil {
		return nil, fmt.Errorf("yahoo history %s: %w", symbol, err)
	}

	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo history %s: empty result", symbol)
	}

	r := resp.Chart.Result[0]
	if len(r.Indicators.Quote) == 0 {
		return models.HistorySeries{}, nil
	}

	q := r.Indicators.Quote[0]
	series := make(models.HistorySeries, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		if i >= len(q.Close) || !q.Close[i].Valid {
			continue
		}
		bar := models.PriceBar{
			Date:  util.FormatDate(time.Unix(ts, 0).UTC()),
			Close: q.Close[i].Float64,
		}
		if i < len(q.Open) {
			bar.Open = q.Open[i].Float64
		}
		if i < len(q.High) {
			bar.High = q.High[i].Float64
		}
		if i < len(q.Low) {
			bar.Low = q.Low[i].Float64
		}
		if i < len(q.Volume) {
			bar.Volume = q.Volume[i].Int64
		}
		series = append(series, bar)
	}
	return series, nil
}

func (c *Client) get(ctx context.Context, url string, query map[string][]string, dest interface{}) error {
	if c.limiter != nil && !c.limiter.Allow(providerName, c.rateCapacity, c.rateRefill) {
		return fmt.Errorf("rate limited")
	}
	return c.http.GetJSON(ctx, url, query, dest)
}

var _ drepo.MarketData = (*Client)(nil)
