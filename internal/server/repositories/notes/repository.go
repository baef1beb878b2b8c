// Package notes provides persistence for secret notes.
package notes

import (
	"context"

	"github.com/lucasnerism/drivenpass/internal/server/models"
)

// Repository is the persistence contract for notes. Lookups return
// common.ErrorNotFound when no row matches.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	FindAllByUser(ctx context.Context, userID int64) ([]models.Note, error)
	FindByID(ctx context.Context, id int64) (*models.Note, error)
	FindByUserAndTitle(ctx context.Context, userID int64, title string) (*models.Note, error)
	Update(ctx context.Context, note *models.Note) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllForUser(ctx context.Context, userID int64) error
}
