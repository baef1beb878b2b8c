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

// NoteService implements the note operations. Notes carry no encrypted
// fields; access control is the only concern here.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// Create stores a note after checking the per-owner title uniqueness rule.
func (s *NoteService) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)

	_, err := repo.FindByUserAndTitle(ctx, note.UserID, note.Title)
	if err == nil {
		return nil, common.ErrorConflict
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching note: %w", err)
	}

	created, err := repo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return created, nil
}

// FindAll returns every note owned by userID.
func (s *NoteService) FindAll(ctx context.Context, userID int64) ([]models.Note, error) {
	return s.repomanager.Notes(s.db).FindAllByUser(ctx, userID)
}

// FindOne fetches a note by id and enforces ownership: an absent note is
// NotFound, someone else's note is Forbidden. The two cases stay distinct.
func (s *NoteService) FindOne(ctx context.Context, id, userID int64) (*models.Note, error) {
	note, err := s.repomanager.Notes(s.db).FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching note: %w", err)
	}
	if note.UserID != userID {
		return nil, common.ErrorForbidden
	}
	return note, nil
}

// Update replaces the note's title and content after the ownership check.
func (s *NoteService) Update(ctx context.Context, id, userID int64, note *models.Note) (*models.Note, error) {
	if _, err := s.FindOne(ctx, id, userID); err != nil {
		return nil, err
	}

	note.ID = id
	note.UserID = userID
	updated, err := s.repomanager.Notes(s.db).Update(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error updating note: %w", err)
	}
	return updated, nil
}

// Remove deletes the note after the ownership check.
func (s *NoteService) Remove(ctx context.Context, id, userID int64) error {
	if _, err := s.FindOne(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repomanager.Notes(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	return nil
}
