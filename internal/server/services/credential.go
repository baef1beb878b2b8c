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

// CredentialService implements the website-login operations. The password
// field goes through the SecretFieldCodec around every repository call.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *SecretFieldCodec
}

func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, codec *SecretFieldCodec) *CredentialService {
	return &CredentialService{db: db, repomanager: m, codec: codec}
}

// Create stores a credential after the per-owner title uniqueness check,
// encrypting the password first. The returned credential keeps the caller's
// plaintext password.
func (s *CredentialService) Create(ctx context.Context, credential *models.Credential) (*models.Credential, error) {
	repo := s.repomanager.Credentials(s.db)

	_, err := repo.FindByUserAndTitle(ctx, credential.UserID, credential.Title)
	if err == nil {
		return nil, common.ErrorConflict
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching credential: %w", err)
	}

	protected, err := s.codec.ProtectCredential(*credential)
	if err != nil {
		return nil, common.ErrorInternal
	}

	created, err := repo.Create(ctx, &protected)
	if err != nil {
		return nil, fmt.Errorf("error creating credential: %w", err)
	}

	out := *created
	out.Password = credential.Password
	return &out, nil
}

// FindAll returns every credential owned by userID with the password
// decrypted. Decryption failure on any record fails the whole call.
func (s *CredentialService) FindAll(ctx context.Context, userID int64) ([]models.Credential, error) {
	stored, err := s.repomanager.Credentials(s.db).FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Credential, 0, len(stored))
	for _, credential := range stored {
		revealed, err := s.codec.RevealCredential(credential)
		if err != nil {
			return nil, err
		}
		result = append(result, revealed)
	}
	return result, nil
}

// FindOne fetches a credential by id, enforces ownership and decrypts the
// password.
func (s *CredentialService) FindOne(ctx context.Context, id, userID int64) (*models.Credential, error) {
	credential, err := s.repomanager.Credentials(s.db).FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching credential: %w", err)
	}
	if credential.UserID != userID {
		return nil, common.ErrorForbidden
	}

	revealed, err := s.codec.RevealCredential(*credential)
	if err != nil {
		return nil, err
	}
	return &revealed, nil
}

// Update replaces the credential after the ownership check, re-encrypting
// the password.
func (s *CredentialService) Update(ctx context.Context, id, userID int64, credential *models.Credential) (*models.Credential, error) {
	if _, err := s.FindOne(ctx, id, userID); err != nil {
		return nil, err
	}

	protected, err := s.codec.ProtectCredential(*credential)
	if err != nil {
		return nil, common.ErrorInternal
	}
	protected.ID = id
	protected.UserID = userID

	if _, err := s.repomanager.Credentials(s.db).Update(ctx, &protected); err != nil {
		return nil, fmt.Errorf("error updating credential: %w", err)
	}

	out := protected
	out.Password = credential.Password
	return &out, nil
}

// Remove deletes the credential after the ownership check.
func (s *CredentialService) Remove(ctx context.Context, id, userID int64) error {
	if _, err := s.FindOne(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repomanager.Credentials(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting credential: %w", err)
	}
	return nil
}
