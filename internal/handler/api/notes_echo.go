package api

import (
	"errors"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	appmw "StockScope/internal/middleware"
	"StockScope/internal/usecase"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NotesEchoHandler exposes the per-user notes and watchlist endpoints.
// Everything here sits behind bearer-token auth.
type NotesEchoHandler struct {
	logger    *xlogger.Logger
	notes     *usecase.NotesService
	watchlist *usecase.WatchlistService
	sessions  drepo.SessionStore
}

func NewNotesEchoHandler(logger *xlogger.Logger, notes *usecase.NotesService, watchlist *usecase.WatchlistService, sessions drepo.SessionStore) *NotesEchoHandler {
	return &NotesEchoHandler{logger: logger, notes: notes, watchlist: watchlist, sessions: sessions}
}

func (h *NotesEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api", appmw.Auth(h.sessions))

	g.POST("/stocks/:symbol/notes", h.CreateNote)
	g.GET("/stocks/:symbol/notes", h.GetNote)
	g.PUT("/stocks/:symbol/notes", h.UpdateNote)
	g.DELETE("/stocks/:symbol/notes", h.DeleteNote)
	g.GET("/notes", h.ListNotes)

	g.GET("/watchlist", h.ListWatchlist)
	g.POST("/watchlist", h.AddToWatchlist)
	g.DELETE("/watchlist/:symbol", h.RemoveFromWatchlist)
}

func (h *NotesEchoHandler) CreateNote(c echo.Context) error {
	req := &models.NoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	note, err := h.notes.Create(c.Request().Context(), appmw.UserID(c), req.Symbol, req.Note)
	if err != nil {
		if errors.Is(err, drepo.ErrDuplicate) {
			return xhttp.AppErrorResponse(c, xhttp.DuplicateError("You already have a note for this stock"))
		}
		h.logger.Error("note create failed", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, note)
}

func (h *NotesEchoHandler) GetNote(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	note, err := h.notes.Get(c.Request().Context(), appmw.UserID(c), req.Symbol)
	if err != nil {
		if errors.Is(err, drepo.ErrNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("No note found for this stock"))
		}
		h.logger.Error("note fetch failed", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, note)
}

func (h *NotesEchoHandler) UpdateNote(c echo.Context) error {
	req := &models.NoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	note, err := h.notes.Update(c.Request().Context(), appmw.UserID(c), req.Symbol, req.Note)
	if err != nil {
		if errors.Is(err, drepo.ErrNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("No note found for this stock"))
		}
		h.logger.Error("note update failed", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, note)
}

func (h *NotesEchoHandler) DeleteNote(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if err := h.notes.Delete(c.Request().Context(), appmw.UserID(c), req.Symbol); err != nil {
		if errors.Is(err, drepo.ErrNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("No note found for this stock"))
		}
		h.logger.Error("note delete failed", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.NoContentResponse(c)
}

func (h *NotesEchoHandler) ListNotes(c echo.Context) error {
	notes, err := h.notes.GetAll(c.Request().Context(), appmw.UserID(c))
	if err != nil {
		h.logger.Error("note list failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, notes)
}

func (h *NotesEchoHandler) ListWatchlist(c echo.Context) error {
	entries, err := h.watchlist.List(c.Request().Context(), appmw.UserID(c))
	if err != nil {
		h.logger.Error("watchlist list failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, entries)
}

func (h *NotesEchoHandler) AddToWatchlist(c echo.Context) error {
	req := &models.WatchlistAddRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	entry, err := h.watchlist.Add(c.Request().Context(), appmw.UserID(c), req.Symbol)
	if err != nil {
		if errors.Is(err, drepo.ErrDuplicate) {
			return xhttp.AppErrorResponse(c, xhttp.DuplicateError("Stock is already on your watchlist"))
		}
		h.logger.Error("watchlist add failed", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, entry)
}

func (h *NotesEchoHandler) RemoveFromWatchlist(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if err := h.watchlist.Remove(c.Request().Context(), appmw.UserID(c), req.Symbol); err != nil {
		if errors.Is(err, drepo.ErrNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("Stock is not on your watchlist"))
		}
		h.logger.Error("watchlist remove failed", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.NoContentResponse(c)
}
