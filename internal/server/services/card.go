package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lucasnerism/drivenpass/internal/common"
	"github.com/lucasnerism/drivenpass/internal/server/models"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/repomanager"
)

// CardService implements the card operations. CVV and password go through
// the SecretFieldCodec on the way in and out of the repository; callers of
// this service only ever see plaintext.
type CardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *SecretFieldCodec
}

func NewCardService(db *sql.DB, m repomanager.RepositoryManager, codec *SecretFieldCodec) *CardService {
	return &CardService{db: db, repomanager: m, codec: codec}
}

// Create stores a card after the per-owner title uniqueness check,
// encrypting the sensitive fields first. The returned card keeps the
// caller's plaintext values.
func (s *CardService) Create(ctx context.Context, card *models.Card) (*models.Card, error) {
	repo := s.repomanager.Cards(s.db)

	_, err := repo.FindByUserAndTitle(ctx, card.UserID, card.Title)
	if err == nil {
		return nil, common.ErrorConflict
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching card: %w", err)
	}

	protected, err := s.codec.ProtectCard(*card)
	if err != nil {
		return nil, common.ErrorInternal
	}

	created, err := repo.Create(ctx, &protected)
	if err != nil {
		return nil, fmt.Errorf("error creating card: %w", err)
	}

	out := *created
	out.CVV = card.CVV
	out.Password = card.Password
	return &out, nil
}

// FindAll returns every card owned by userID with sensitive fields
// decrypted. A record that cannot be decrypted fails the whole call.
func (s *CardService) FindAll(ctx context.Context, userID int64) ([]models.Card, error) {
	stored, err := s.repomanager.Cards(s.db).FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Card, 0, len(stored))
	for _, card := range stored {
		revealed, err := s.codec.RevealCard(card)
		if err != nil {
			return nil, err
		}
		result = append(result, revealed)
	}
	return result, nil
}

// FindOne fetches a card by id, enforces ownership and decrypts the
// sensitive fields.
func (s *CardService) FindOne(ctx context.Context, id, userID int64) (*models.Card, error) {
	card, err := s.repomanager.Cards(s.db).FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching card: %w", err)
	}
	if card.UserID != userID {
		return nil, common.ErrorForbidden
	}

	revealed, err := s.codec.RevealCard(*card)
	if err != nil {
		return nil, err
	}
	return &revealed, nil
}

// Update replaces the card after the ownership check, re-encrypting the
// sensitive fields.
func (s *CardService) Update(ctx context.Context, id, userID int64, card *models.Card) (*models.Card, error) {
	if _, err := s.FindOne(ctx, id, userID); err != nil {
		return nil, err
	}

	protected, err := s.codec.ProtectCard(*card)
	if err != nil {
		return nil, common.ErrorInternal
	}
	protected.ID = id
	protected.UserID = userID

	if _, err := s.repomanager.Cards(s.db).Update(ctx, &protected); err != nil {
		return nil, fmt.Errorf("error updating card: %w", err)
	}

	out := protected
	out.CVV = card.CVV
	out.Password = card.Password
	return &out, nil
}

// Remove deletes the card after the ownership check.
func (s *CardService) Remove(ctx context.Context, id, userID int64) error {
	if _, err := s.FindOne(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repomanager.Cards(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting card: %w", err)
	}
	return nil
}
