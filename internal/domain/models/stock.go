package models

// PriceBar is one daily OHLCV observation. Bars in a series are ordered
// ascending by date; providers may omit volume, which decodes to 0.
type PriceBar struct {
	Date   string  `json:"date"` // calendar day, "2006-01-02"
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// HistorySeries is the request-scoped daily history for one symbol.
type HistorySeries []PriceBar

// Quote is the latest market quote for a symbol.
type Quote struct {
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// Profile describes the company behind a symbol.
type Profile struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Industry string `json:"industry"`
	Sector   string `json:"sector"`
	Country  string `json:"country"`
	Website  string `json:"website"`
}

// NewsItem is one recent news article for a symbol.
type NewsItem struct {
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Link        string `json:"link"`
	PublishedAt string `json:"published_at"`
}

// StockDetail is the assembled per-symbol record. Fields a provider
// failed to supply carry defaults, never absence.
type StockDetail struct {
	Symbol           string     `json:"symbol"`
	CurrentQuote     Quote      `json:"current_quote"`
	Profile          Profile    `json:"profile"`
	HistoricalPrices []PriceBar `json:"historical_prices"`
	News             []NewsItem `json:"news"`
}

// DefaultStockDetail builds a StockDetail with every field defaulted.
func DefaultStockDetail(symbol string) *StockDetail {
	return &StockDetail{
		Symbol: symbol,
		CurrentQuote: Quote{
			Price:         0.0,
			Change:        0.0,
			ChangePercent: 0.0,
		},
		Profile: Profile{
			Name:     "Unknown",
			Symbol:   symbol,
			Industry: "Unknown",
			Sector:   "Unknown",
			Country:  "Unknown",
			Website:  "#",
		},
		HistoricalPrices: []PriceBar{},
		News:             []NewsItem{},
	}
}

// StockSummary is the sidebar row for a tracked symbol.
type StockSummary struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	LastClose float64 `json:"lastClose"`
	Industry  string  `json:"industry"`
	Sector    string  `json:"sector"`
}

// SearchResult is a provider-passthrough ticker search hit.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Currency string `json:"currency,omitempty"`
	Exchange string `json:"stockExchange,omitempty"`
}

// StockHistory pairs a symbol with its bar series for the history endpoint.
type StockHistory struct {
	Symbol  string     `json:"symbol"`
	History []PriceBar `json:"history"`
}
