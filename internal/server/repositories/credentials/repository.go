// Package credentials provides persistence for website logins. The password
// column holds ciphertext; this layer moves values as-is.
package credentials

import (
	"context"

	"github.com/lucasnerism/drivenpass/internal/server/models"
)

// Repository is the persistence contract for credentials. Lookups return
// common.ErrorNotFound when no row matches.
type Repository interface {
	Create(ctx context.Context, credential *models.Credential) (*models.Credential, error)
	FindAllByUser(ctx context.Context, userID int64) ([]models.Credential, error)
	FindByID(ctx context.Context, id int64) (*models.Credential, error)
	FindByUserAndTitle(ctx context.Context, userID int64, title string) (*models.Credential, error)
	Update(ctx context.Context, credential *models.Credential) (*models.Credential, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllForUser(ctx context.Context, userID int64) error
}
