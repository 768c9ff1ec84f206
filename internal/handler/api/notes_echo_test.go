package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	"StockScope/internal/usecase"
	applogger "StockScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

type fakeSessions struct {
	tokens map[string]string
}

func (f *fakeSessions) UserForToken(ctx context.Context, token string) (string, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return "", drepo.ErrNotFound
	}
	return userID, nil
}

func (f *fakeSessions) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	f.tokens[token] = userID
	return nil
}

type fakeNoteStore struct {
	notes map[string]*models.Note
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: make(map[string]*models.Note)}
}

func (s *fakeNoteStore) key(userID, symbol string) string { return userID + "/" + symbol }

func (s *fakeNoteStore) Create(ctx context.Context, note *models.Note) error {
	k := s.key(note.UserID, note.Symbol)
	if _, ok := s.notes[k]; ok {
		return drepo.ErrDuplicate
	}
	copied := *note
	s.notes[k] = &copied
	return nil
}

func (s *fakeNoteStore) FindByUserAndSymbol(ctx context.Context, userID, symbol string) (*models.Note, error) {
	note, ok := s.notes[s.key(userID, symbol)]
	if !ok {
		return nil, drepo.ErrNotFound
	}
	copied := *note
	return &copied, nil
}

func (s *fakeNoteStore) FindByUser(ctx context.Context, userID string) ([]models.Note, error) {
	var out []models.Note
	for _, note := range s.notes {
		if note.UserID == userID {
			out = append(out, *note)
		}
	}
	return out, nil
}

func (s *fakeNoteStore) Update(ctx context.Context, note *models.Note) error {
	existing, ok := s.notes[s.key(note.UserID, note.Symbol)]
	if !ok {
		return drepo.ErrNotFound
	}
	existing.Body = note.Body
	return nil
}

func (s *fakeNoteStore) Delete(ctx context.Context, userID, symbol string) (bool, error) {
	k := s.key(userID, symbol)
	if _, ok := s.notes[k]; !ok {
		return false, nil
	}
	delete(s.notes, k)
	return true, nil
}

type fakeWatchlistStore struct {
	entries []models.WatchlistEntry
}

func (s *fakeWatchlistStore) Add(ctx context.Context, entry *models.WatchlistEntry) error {
	ok, _ := s.Exists(ctx, entry.UserID, entry.Symbol)
	if ok {
		return drepo.ErrDuplicate
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *fakeWatchlistStore) Exists(ctx context.Context, userID, symbol string) (bool, error) {
	for _, e := range s.entries {
		if e.UserID == userID && e.Symbol == symbol {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeWatchlistStore) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	var out []models.WatchlistEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeWatchlistStore) Remove(ctx context.Context, userID, symbol string) (bool, error) {
	for i, e := range s.entries {
		if e.UserID == userID && e.Symbol == symbol {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newNotesTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	notes := usecase.NewNotesService(newFakeNoteStore())
	watchlist := usecase.NewWatchlistService(&fakeWatchlistStore{})
	sessions := &fakeSessions{tokens: map[string]string{"good-token": "user-1"}}

	e := echo.New()
	NewNotesEchoHandler(l, notes, watchlist, sessions).RegisterRoutes(e)
	return e
}

func doAuthedRequest(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthMissingToken(t *testing.T) {
	e := newNotesTestServer(t)
	rec := doAuthedRequest(e, http.MethodGet, "/api/watchlist", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthBadToken(t *testing.T) {
	e := newNotesTestServer(t)
	rec := doAuthedRequest(e, http.MethodGet, "/api/watchlist", "bad-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestNoteLifecycle(t *testing.T) {
	e := newNotesTestServer(t)

	rec := doAuthedRequest(e, http.MethodPost, "/api/stocks/AAPL/notes", "good-token", `{"note":"buy the dip"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doAuthedRequest(e, http.MethodPost, "/api/stocks/AAPL/notes", "good-token", `{"note":"again"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", rec.Code)
	}

	rec = doAuthedRequest(e, http.MethodGet, "/api/stocks/AAPL/notes", "good-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	rec = doAuthedRequest(e, http.MethodPut, "/api/stocks/AAPL/notes", "good-token", `{"note":"updated"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doAuthedRequest(e, http.MethodDelete, "/api/stocks/AAPL/notes", "good-token", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}

	rec = doAuthedRequest(e, http.MethodGet, "/api/stocks/AAPL/notes", "good-token", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestNoteValidation(t *testing.T) {
	e := newNotesTestServer(t)
	rec := doAuthedRequest(e, http.MethodPost, "/api/stocks/AAPL/notes", "good-token", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty note, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestWatchlistLifecycle(t *testing.T) {
	e := newNotesTestServer(t)

	rec := doAuthedRequest(e, http.MethodPost, "/api/watchlist", "good-token", `{"symbol":"tsla"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doAuthedRequest(e, http.MethodPost, "/api/watchlist", "good-token", `{"symbol":"TSLA"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", rec.Code)
	}

	rec = doAuthedRequest(e, http.MethodGet, "/api/watchlist", "good-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}

	rec = doAuthedRequest(e, http.MethodDelete, "/api/watchlist/TSLA", "good-token", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("remove: expected 204, got %d", rec.Code)
	}

	rec = doAuthedRequest(e, http.MethodDelete, "/api/watchlist/TSLA", "good-token", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("remove missing: expected 404, got %d", rec.Code)
	}
}
