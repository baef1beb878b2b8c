package http

import (
	"context"
	"net/http"

	"github.com/lucasnerism/drivenpass/internal/logging"
	"github.com/lucasnerism/drivenpass/internal/server/models"
)

// CredentialService covers the website-login operations the HTTP layer needs.
type CredentialService interface {
	Create(ctx context.Context, credential *models.Credential) (*models.Credential, error)
	FindAll(ctx context.Context, userID int64) ([]models.Credential, error)
	FindOne(ctx context.Context, id, userID int64) (*models.Credential, error)
	Update(ctx context.Context, id, userID int64, credential *models.Credential) (*models.Credential, error)
	Remove(ctx context.Context, id, userID int64) error
}

// CredentialHandler serves the authenticated /credentials CRUD endpoints.
type CredentialHandler struct {
	credentials CredentialService
	logger      logging.Logger
}

func NewCredentialHandler(credentials CredentialService, logger logging.Logger) *CredentialHandler {
	return &CredentialHandler{credentials: credentials, logger: logger}
}

func (req *credentialRequest) toModel(userID int64) *models.Credential {
	return &models.Credential{
		Title:    req.Title,
		URL:      req.URL,
		Username: req.Username,
		Password: req.Password,
		UserID:   userID,
	}
}

func (h *CredentialHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var req credentialRequest
	if err := decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	credential, err := h.credentials.Create(r.Context(), req.toModel(userID))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, credential)
}

func (h *CredentialHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	credentials, err := h.credentials.FindAll(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, credentials)
}

func (h *CredentialHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	credential, err := h.credentials.FindOne(r.Context(), id, userID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, credential)
}

func (h *CredentialHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	var req credentialRequest
	if err := decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	credential, err := h.credentials.Update(r.Context(), id, userID, req.toModel(userID))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, credential)
}

func (h *CredentialHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	if err := h.credentials.Remove(r.Context(), id, userID); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
