package usecase

import (
	"context"
	"strings"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
)

// NotesService manages per-user stock annotations. The user id arrives
// already resolved by the identity layer; it is never interpreted here.
type NotesService struct {
	store drepo.NoteStore
}

// NewNotesService creates a notes service.
func NewNotesService(store drepo.NoteStore) *NotesService {
	return &NotesService{store: store}
}

// Create adds a note. A second note for the same (user, symbol) pair is
// rejected with ErrDuplicate, never overwritten.
func (s *NotesService) Create(ctx context.Context, userID, symbol, body string) (*models.Note, error) {
	note := &models.Note{
		UserID: userID,
		Symbol: normalizeSymbol(symbol),
		Body:   body,
	}
	if err := s.store.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Get returns the user's note for a symbol.
func (s *NotesService) Get(ctx context.Context, userID, symbol string) (*models.Note, error) {
	return s.store.FindByUserAndSymbol(ctx, userID, normalizeSymbol(symbol))
}

// GetAll returns the user's notes, most recently updated first.
func (s *NotesService) GetAll(ctx context.Context, userID string) ([]models.Note, error) {
	notes, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// Update replaces the body of an existing note.
func (s *NotesService) Update(ctx context.Context, userID, symbol, body string) (*models.Note, error) {
	symbol = normalizeSymbol(symbol)
	note := &models.Note{
		UserID: userID,
		Symbol: symbol,
		Body:   body,
	}
	if err := s.store.Update(ctx, note); err != nil {
		return nil, err
	}
	return s.store.FindByUserAndSymbol(ctx, userID, symbol)
}

// Delete removes the user's note for a symbol.
func (s *NotesService) Delete(ctx context.Context, userID, symbol string) error {
	deleted, err := s.store.Delete(ctx, userID, normalizeSymbol(symbol))
	if err != nil {
		return err
	}
	if !deleted {
		return drepo.ErrNotFound
	}
	return nil
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
