package repository

import (
	"context"
	"errors"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"

	"gorm.io/gorm"
)

// GormNoteStore persists notes in Postgres via gorm.
type GormNoteStore struct {
	db *gorm.DB
}

// NewGormNoteStore creates a note store.
func NewGormNoteStore(db *gorm.DB) *GormNoteStore {
	return &GormNoteStore{db: db}
}

// Create inserts a note. A second note for the same (user, symbol) pair
// is rejected with ErrDuplicate.
func (s *GormNoteStore) Create(ctx context.Context, note *models.Note) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Note{}).
		Where("user_id = ? AND symbol = ?", note.UserID, note.Symbol).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return drepo.ErrDuplicate
	}
	return s.db.WithContext(ctx).Create(note).Error
}

// FindByUserAndSymbol retrieves the user's note for a symbol.
func (s *GormNoteStore) FindByUserAndSymbol(ctx context.Context, userID, symbol string) (*models.Note, error) {
	var note models.Note
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, drepo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// FindByUser retrieves all notes for a user, most recently updated first.
func (s *GormNoteStore) FindByUser(ctx context.Context, userID string) ([]models.Note, error) {
	var notes []models.Note
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error
	return notes, err
}

// Update replaces the note body for an existing (user, symbol) note.
func (s *GormNoteStore) Update(ctx context.Context, note *models.Note) error {
	res := s.db.WithContext(ctx).Model(&models.Note{}).
		Where("user_id = ? AND symbol = ?", note.UserID, note.Symbol).
		Update("body", note.Body)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return drepo.ErrNotFound
	}
	return nil
}

// Delete removes the user's note for a symbol. Returns false when there
// was nothing to delete.
func (s *GormNoteStore) Delete(ctx context.Context, userID, symbol string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Delete(&models.Note{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

var _ drepo.NoteStore = (*GormNoteStore)(nil)
