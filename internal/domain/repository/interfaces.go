package repository

import (
	"context"
	"time"

	"StockScope/internal/domain/models"
)

// MarketData is the outbound interface to external quote/history providers.
// Unknown symbols surface as provider errors, not local validation.
type MarketData interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
	Profile(ctx context.Context, symbol string) (*models.Profile, error)
	History(ctx context.Context, symbol, from, to string) (models.HistorySeries, error)
}

// NewsProvider fetches recent articles for a symbol.
type NewsProvider interface {
	News(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error)
}

// SymbolSearcher runs a provider-passthrough ticker search.
type SymbolSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error)
}

// NoteStore persists per-user notes, one per (user, symbol).
type NoteStore interface {
	Create(ctx context.Context, note *models.Note) error
	FindByUserAndSymbol(ctx context.Context, userID, symbol string) (*models.Note, error)
	FindByUser(ctx context.Context, userID string) ([]models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, userID, symbol string) (bool, error)
}

// WatchlistStore persists per-user watched symbols.
type WatchlistStore interface {
	Add(ctx context.Context, entry *models.WatchlistEntry) error
	Exists(ctx context.Context, userID, symbol string) (bool, error)
	List(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
	Remove(ctx context.Context, userID, symbol string) (bool, error)
}

// SessionStore resolves opaque bearer tokens to stable user identifiers.
// The core never interprets credentials beyond this lookup.
type SessionStore interface {
	UserForToken(ctx context.Context, token string) (string, error)
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
}

// Metrics abstracts the operational counters recorded by the gateway.
type Metrics interface {
	RecordProviderCall(provider, operation string)
	RecordProviderError(provider, operation string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
