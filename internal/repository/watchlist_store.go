package repository

import (
	"context"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"

	"gorm.io/gorm"
)

// GormWatchlistStore persists watchlist entries in Postgres via gorm.
type GormWatchlistStore struct {
	db *gorm.DB
}

// NewGormWatchlistStore creates a watchlist store.
func NewGormWatchlistStore(db *gorm.DB) *GormWatchlistStore {
	return &GormWatchlistStore{db: db}
}

// Add inserts a watchlist entry; a duplicate (user, symbol) is rejected.
func (s *GormWatchlistStore) Add(ctx context.Context, entry *models.WatchlistEntry) error {
	exists, err := s.Exists(ctx, entry.UserID, entry.Symbol)
	if err != nil {
		return err
	}
	if exists {
		return drepo.ErrDuplicate
	}
	return s.db.WithContext(ctx).Create(entry).Error
}

// Exists reports whether the user already watches the symbol.
func (s *GormWatchlistStore) Exists(ctx context.Context, userID, symbol string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.WatchlistEntry{}).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Count(&count).Error
	return count > 0, err
}

// List returns the user's watchlist, oldest first.
func (s *GormWatchlistStore) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

// Remove deletes the entry. Returns false when there was nothing to remove.
func (s *GormWatchlistStore) Remove(ctx context.Context, userID, symbol string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Delete(&models.WatchlistEntry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

var _ drepo.WatchlistStore = (*GormWatchlistStore)(nil)
