// Package users provides persistence for vault accounts.
package users

import (
	"context"

	"github.com/lucasnerism/drivenpass/internal/server/models"
)

// Repository is the persistence contract for users. GetByEmail and GetByID
// return common.ErrorNotFound when no row matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
