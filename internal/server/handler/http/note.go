package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lucasnerism/drivenpass/internal/logging"
	"github.com/lucasnerism/drivenpass/internal/server/models"
)

// NoteService covers the note operations the HTTP layer needs.
type NoteService interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	FindAll(ctx context.Context, userID int64) ([]models.Note, error)
	FindOne(ctx context.Context, id, userID int64) (*models.Note, error)
	Update(ctx context.Context, id, userID int64, note *models.Note) (*models.Note, error)
	Remove(ctx context.Context, id, userID int64) error
}

// NoteHandler serves the authenticated /notes CRUD endpoints.
type NoteHandler struct {
	notes  NoteService
	logger logging.Logger
}

func NewNoteHandler(notes NoteService, logger logging.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, logger: logger}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func authenticatedUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "unauthorized"})
	}
	return userID, ok
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	note, err := h.notes.Create(r.Context(), &models.Note{
		Title:   req.Title,
		Content: req.Content,
		UserID:  userID,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	notes, err := h.notes.FindAll(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	note, err := h.notes.FindOne(r.Context(), id, userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	var req noteRequest
	if err := decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	note, err := h.notes.Update(r.Context(), id, userID, &models.Note{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	if err := h.notes.Remove(r.Context(), id, userID); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
