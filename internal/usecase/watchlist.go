package usecase

import (
	"context"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
)

// WatchlistService manages the per-user set of watched symbols.
type WatchlistService struct {
	store drepo.WatchlistStore
}

// NewWatchlistService creates a watchlist service.
func NewWatchlistService(store drepo.WatchlistStore) *WatchlistService {
	return &WatchlistService{store: store}
}

// Add puts a symbol on the user's watchlist. Watching an already-watched
// symbol is a duplicate error, not a silent no-op.
func (s *WatchlistService) Add(ctx context.Context, userID, symbol string) (*models.WatchlistEntry, error) {
	entry := &models.WatchlistEntry{
		UserID: userID,
		Symbol: normalizeSymbol(symbol),
	}
	if err := s.store.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the user's watchlist.
func (s *WatchlistService) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	entries, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.WatchlistEntry{}
	}
	return entries, nil
}

// Remove takes a symbol off the user's watchlist.
func (s *WatchlistService) Remove(ctx context.Context, userID, symbol string) error {
	removed, err := s.store.Remove(ctx, userID, normalizeSymbol(symbol))
	if err != nil {
		return err
	}
	if !removed {
		return drepo.ErrNotFound
	}
	return nil
}
