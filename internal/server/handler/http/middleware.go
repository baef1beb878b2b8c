package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lucasnerism/drivenpass/internal/common"
	"github.com/lucasnerism/drivenpass/internal/logging"
	"github.com/lucasnerism/drivenpass/internal/server/auth"
)

// RequestLogging logs every request with its status and duration.
func RequestLogging(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
			)
		})
	}
}

// BearerAuth gates protected routes. It verifies the bearer token, then
// re-checks that the subject still exists so a token minted before an
// account was erased stops working immediately.
type BearerAuth struct {
	accounts  AccountService
	jwtSecret []byte
	logger    logging.Logger
}

func NewBearerAuth(accounts AccountService, jwtSecret []byte, logger logging.Logger) *BearerAuth {
	return &BearerAuth{accounts: accounts, jwtSecret: jwtSecret, logger: logger}
}

func (m *BearerAuth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			respondError(w, r, m.logger, common.ErrorUnauthorized)
			return
		}

		userID, err := auth.GetUserIDFromToken(token, m.jwtSecret)
		if err != nil {
			respondError(w, r, m.logger, err)
			return
		}

		if _, err := m.accounts.GetByID(r.Context(), userID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				m.logger.Warn(r.Context(), "token for a deleted account", "user_id", userID)
				respondError(w, r, m.logger, common.ErrorUnauthorized)
				return
			}
			respondError(w, r, m.logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
