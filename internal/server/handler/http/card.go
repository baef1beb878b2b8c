package http

import (
	"context"
	"net/http"

	"github.com/lucasnerism/drivenpass/internal/logging"
	"github.com/lucasnerism/drivenpass/internal/server/models"
)

// CardService covers the card operations the HTTP layer needs.
type CardService interface {
	Create(ctx context.Context, card *models.Card) (*models.Card, error)
	FindAll(ctx context.Context, userID int64) ([]models.Card, error)
	FindOne(ctx context.Context, id, userID int64) (*models.Card, error)
	Update(ctx context.Context, id, userID int64, card *models.Card) (*models.Card, error)
	Remove(ctx context.Context, id, userID int64) error
}

// CardHandler serves the authenticated /cards CRUD endpoints.
type CardHandler struct {
	cards  CardService
	logger logging.Logger
}

func NewCardHandler(cards CardService, logger logging.Logger) *CardHandler {
	return &CardHandler{cards: cards, logger: logger}
}

func (req *cardRequest) toModel(userID int64) *models.Card {
	return &models.Card{
		Title:          req.Title,
		Name:           req.Name,
		Number:         req.Number,
		CVV:            req.CVV,
		ExpirationDate: req.ExpirationDate,
		Password:       req.Password,
		IsVirtual:      req.IsVirtual,
		Type:           models.CardType(req.Type),
		UserID:         userID,
	}
}

func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var req cardRequest
	if err := decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	card, err := h.cards.Create(r.Context(), req.toModel(userID))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (h *CardHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	cards, err := h.cards.FindAll(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *CardHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	card, err := h.cards.FindOne(r.Context(), id, userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	var req cardRequest
	if err := decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	card, err := h.cards.Update(r.Context(), id, userID, req.toModel(userID))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *CardHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	if err := h.cards.Remove(r.Context(), id, userID); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
