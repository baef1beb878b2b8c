// Package cards provides persistence for payment cards. The cvv and password
// columns hold ciphertext; this layer moves values as-is and never touches
// the cipher.
package cards

import (
	"context"

	"github.com/lucasnerism/drivenpass/internal/server/models"
)

// Repository is the persistence contract for cards. Lookups return
// common.ErrorNotFound when no row matches.
type Repository interface {
	Create(ctx context.Context, card *models.Card) (*models.Card, error)
	FindAllByUser(ctx context.Context, userID int64) ([]models.Card, error)
	FindByID(ctx context.Context, id int64) (*models.Card, error)
	FindByUserAndTitle(ctx context.Context, userID int64, title string) (*models.Card, error)
	Update(ctx context.Context, card *models.Card) (*models.Card, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllForUser(ctx context.Context, userID int64) error
}
