// Package http provides the HTTP routing, middleware and handlers for the
// DrivenPass API.
package http

import (
	"context"
	"net/http"

	"github.com/lucasnerism/drivenpass/internal/logging"
	"github.com/lucasnerism/drivenpass/internal/server/models"
)

// AccountService covers the account operations the HTTP layer needs.
type AccountService interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Erase(ctx context.Context, userID int64, password string) error
}

// AccountHandler serves sign-up, sign-in and account erasure.
type AccountHandler struct {
	accounts AccountService
	logger   logging.Logger
}

func NewAccountHandler(accounts AccountService, logger logging.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

// Health answers liveness probes.
func (h *AccountHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SignUp creates an account. The response carries id and email only, never
// the password hash.
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	user, err := h.accounts.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    user.ID,
		"email": user.Email,
	})
}

// SignIn verifies the credentials and returns a bearer token. The failure
// body is the same for an unknown e-mail and a wrong password.
func (h *AccountHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	token, err := h.accounts.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Erase deletes the authenticated account and everything it owns after
// re-verifying the password.
func (h *AccountHandler) Erase(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "unauthorized"})
		return
	}

	var req eraseRequest
	if err := decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	if err := h.accounts.Erase(r.Context(), userID, req.Password); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "erased"})
}
