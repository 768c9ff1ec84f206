package usecase

import (
	"context"
	"errors"
	"testing"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
)

// memNoteStore is an in-memory NoteStore honoring the (user, symbol)
// uniqueness the real table enforces.
type memNoteStore struct {
	notes map[string]*models.Note
}

func newMemNoteStore() *memNoteStore {
	return &memNoteStore{notes: make(map[string]*models.Note)}
}

func noteKey(userID, symbol string) string { return userID + "/" + symbol }

func (s *memNoteStore) Create(ctx context.Context, note *models.Note) error {
	k := noteKey(note.UserID, note.Symbol)
	if _, ok := s.notes[k]; ok {
		return drepo.ErrDuplicate
	}
	copied := *note
	s.notes[k] = &copied
	return nil
}

func (s *memNoteStore) FindByUserAndSymbol(ctx context.Context, userID, symbol string) (*models.Note, error) {
	note, ok := s.notes[noteKey(userID, symbol)]
	if !ok {
		return nil, drepo.ErrNotFound
	}
	copied := *note
	return &copied, nil
}

func (s *memNoteStore) FindByUser(ctx context.Context, userID string) ([]models.Note, error) {
	var out []models.Note
	for _, note := range s.notes {
		if note.UserID == userID {
			out = append(out, *note)
		}
	}
	return out, nil
}

func (s *memNoteStore) Update(ctx context.Context, note *models.Note) error {
	existing, ok := s.notes[noteKey(note.UserID, note.Symbol)]
	if !ok {
		return drepo.ErrNotFound
	}
	existing.Body = note.Body
	return nil
}

func (s *memNoteStore) Delete(ctx context.Context, userID, symbol string) (bool, error) {
	k := noteKey(userID, symbol)
	if _, ok := s.notes[k]; !ok {
		return false, nil
	}
	delete(s.notes, k)
	return true, nil
}

func TestNotesCreateAndGet(t *testing.T) {
	svc := NewNotesService(newMemNoteStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", " aapl ", "buy the dip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Symbol != "AAPL" {
		t.Errorf("symbol not normalized: %s", created.Symbol)
	}

	got, err := svc.Get(ctx, "user-1", "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Body != "buy the dip" {
		t.Errorf("unexpected body: %q", got.Body)
	}
}

func TestNotesDuplicateRejected(t *testing.T) {
	svc := NewNotesService(newMemNoteStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", "AAPL", "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Create(ctx, "user-1", "aapl", "second")
	if !errors.Is(err, drepo.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// Same symbol for another user is fine.
	if _, err := svc.Create(ctx, "user-2", "AAPL", "theirs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNotesUpdate(t *testing.T) {
	svc := NewNotesService(newMemNoteStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", "AAPL", "old"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(ctx, "user-1", "AAPL", "new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Body != "new" {
		t.Errorf("unexpected body: %q", updated.Body)
	}

	_, err = svc.Update(ctx, "user-1", "MSFT", "missing")
	if !errors.Is(err, drepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNotesDelete(t *testing.T) {
	svc := NewNotesService(newMemNoteStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", "AAPL", "note"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, "user-1", "AAPL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.Delete(ctx, "user-1", "AAPL")
	if !errors.Is(err, drepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestNotesGetAllEmpty(t *testing.T) {
	svc := NewNotesService(newMemNoteStore())

	notes, err := svc.GetAll(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notes == nil || len(notes) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", notes)
	}
}
