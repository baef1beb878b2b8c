// Package services contains server-side business logic. This file implements
// UserService, which handles sign-up, sign-in and full account erasure.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lucasnerism/drivenpass/internal/common"
	"github.com/lucasnerism/drivenpass/internal/dbx"
	"github.com/lucasnerism/drivenpass/internal/server/auth"
	"github.com/lucasnerism/drivenpass/internal/server/config"
	"github.com/lucasnerism/drivenpass/internal/server/models"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/repomanager"
)

// UserService provides account-related operations:
// - SignUp: create users
// - SignIn: verify credentials and mint a bearer token
// - Erase: verify the password and delete the account and everything it owns
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.JWTSecret),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// SignUp creates a new account. A taken e-mail yields common.ErrorConflict.
// The returned user carries the stored hash; callers expose id and email only.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorConflict
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// SignIn verifies the credentials and returns a signed bearer token.
// Unknown e-mail and wrong password fail the same way so callers cannot
// probe which half was wrong.
func (s *UserService) SignIn(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// GetByID loads a user by id. Used by the auth middleware to make sure the
// token subject still exists.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// Erase re-verifies the password and then deletes the user together with all
// owned notes, cards and credentials in a single transaction. Either all
// four tables lose their rows or none of them do.
func (s *UserService) Erase(ctx context.Context, userID int64, password string) error {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return common.ErrorUnauthorized
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Notes(tx).DeleteAllForUser(ctx, userID); err != nil {
			return fmt.Errorf("error deleting notes: %w", err)
		}
		if err := s.repomanager.Cards(tx).DeleteAllForUser(ctx, userID); err != nil {
			return fmt.Errorf("error deleting cards: %w", err)
		}
		if err := s.repomanager.Credentials(tx).DeleteAllForUser(ctx, userID); err != nil {
			return fmt.Errorf("error deleting credentials: %w", err)
		}
		if err := s.repomanager.Users(tx).Delete(ctx, userID); err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		return nil
	})
}
