package services

import (
	"context"
	"database/sql"

	"github.com/lucasnerism/drivenpass/internal/dbx"
	"github.com/lucasnerism/drivenpass/internal/server/models"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/cards"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/credentials"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/notes"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/users"
)

// Function-field fakes: tests set only the calls they expect, anything else
// panics loudly.

type fakeUsersRepo struct {
	createFn     func(ctx context.Context, u *models.User) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*models.User, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createFn == nil {
		panic("unexpected Create call")
	}
	return f.createFn(ctx, u)
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn == nil {
		panic("unexpected GetByEmail call")
	}
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getByIDFn == nil {
		panic("unexpected GetByID call")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected Delete call")
	}
	return f.deleteFn(ctx, id)
}

type fakeNotesRepo struct {
	createFn             func(ctx context.Context, n *models.Note) (*models.Note, error)
	findAllByUserFn      func(ctx context.Context, userID int64) ([]models.Note, error)
	findByIDFn           func(ctx context.Context, id int64) (*models.Note, error)
	findByUserAndTitleFn func(ctx context.Context, userID int64, title string) (*models.Note, error)
	updateFn             func(ctx context.Context, n *models.Note) (*models.Note, error)
	deleteFn             func(ctx context.Context, id int64) error
	deleteAllForUserFn   func(ctx context.Context, userID int64) error
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	if f.createFn == nil {
		panic("unexpected Create call")
	}
	return f.createFn(ctx, n)
}

func (f *fakeNotesRepo) FindAllByUser(ctx context.Context, userID int64) ([]models.Note, error) {
	if f.findAllByUserFn == nil {
		panic("unexpected FindAllByUser call")
	}
	return f.findAllByUserFn(ctx, userID)
}

func (f *fakeNotesRepo) FindByID(ctx context.Context, id int64) (*models.Note, error) {
	if f.findByIDFn == nil {
		panic("unexpected FindByID call")
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeNotesRepo) FindByUserAndTitle(ctx context.Context, userID int64, title string) (*models.Note, error) {
	if f.findByUserAndTitleFn == nil {
		panic("unexpected FindByUserAndTitle call")
	}
	return f.findByUserAndTitleFn(ctx, userID, title)
}

func (f *fakeNotesRepo) Update(ctx context.Context, n *models.Note) (*models.Note, error) {
	if f.updateFn == nil {
		panic("unexpected Update call")
	}
	return f.updateFn(ctx, n)
}

func (f *fakeNotesRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected Delete call")
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeNotesRepo) DeleteAllForUser(ctx context.Context, userID int64) error {
	if f.deleteAllForUserFn == nil {
		panic("unexpected DeleteAllForUser call")
	}
	return f.deleteAllForUserFn(ctx, userID)
}

type fakeCardsRepo struct {
	createFn             func(ctx context.Context, c *models.Card) (*models.Card, error)
	findAllByUserFn      func(ctx context.Context, userID int64) ([]models.Card, error)
	findByIDFn           func(ctx context.Context, id int64) (*models.Card, error)
	findByUserAndTitleFn func(ctx context.Context, userID int64, title string) (*models.Card, error)
	updateFn             func(ctx context.Context, c *models.Card) (*models.Card, error)
	deleteFn             func(ctx context.Context, id int64) error
	deleteAllForUserFn   func(ctx context.Context, userID int64) error
}

func (f *fakeCardsRepo) Create(ctx context.Context, c *models.Card) (*models.Card, error) {
	if f.createFn == nil {
		panic("unexpected Create call")
	}
	return f.createFn(ctx, c)
}

func (f *fakeCardsRepo) FindAllByUser(ctx context.Context, userID int64) ([]models.Card, error) {
	if f.findAllByUserFn == nil {
		panic("unexpected FindAllByUser call")
	}
	return f.findAllByUserFn(ctx, userID)
}

func (f *fakeCardsRepo) FindByID(ctx context.Context, id int64) (*models.Card, error) {
	if f.findByIDFn == nil {
		panic("unexpected FindByID call")
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeCardsRepo) FindByUserAndTitle(ctx context.Context, userID int64, title string) (*models.Card, error) {
	if f.findByUserAndTitleFn == nil {
		panic("unexpected FindByUserAndTitle call")
	}
	return f.findByUserAndTitleFn(ctx, userID, title)
}

func (f *fakeCardsRepo) Update(ctx context.Context, c *models.Card) (*models.Card, error) {
	if f.updateFn == nil {
		panic("unexpected Update call")
	}
	return f.updateFn(ctx, c)
}

func (f *fakeCardsRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected Delete call")
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeCardsRepo) DeleteAllForUser(ctx context.Context, userID int64) error {
	if f.deleteAllForUserFn == nil {
		panic("unexpected DeleteAllForUser call")
	}
	return f.deleteAllForUserFn(ctx, userID)
}

type fakeCredentialsRepo struct {
	createFn             func(ctx context.Context, c *models.Credential) (*models.Credential, error)
	findAllByUserFn      func(ctx context.Context, userID int64) ([]models.Credential, error)
	findByIDFn           func(ctx context.Context, id int64) (*models.Credential, error)
	findByUserAndTitleFn func(ctx context.Context, userID int64, title string) (*models.Credential, error)
	updateFn             func(ctx context.Context, c *models.Credential) (*models.Credential, error)
	deleteFn             func(ctx context.Context, id int64) error
	deleteAllForUserFn   func(ctx context.Context, userID int64) error
}

func (f *fakeCredentialsRepo) Create(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	if f.createFn == nil {
		panic("unexpected Create call")
	}
	return f.createFn(ctx, c)
}

func (f *fakeCredentialsRepo) FindAllByUser(ctx context.Context, userID int64) ([]models.Credential, error) {
	if f.findAllByUserFn == nil {
		panic("unexpected FindAllByUser call")
	}
	return f.findAllByUserFn(ctx, userID)
}

func (f *fakeCredentialsRepo) FindByID(ctx context.Context, id int64) (*models.Credential, error) {
	if f.findByIDFn == nil {
		panic("unexpected FindByID call")
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeCredentialsRepo) FindByUserAndTitle(ctx context.Context, userID int64, title string) (*models.Credential, error) {
	if f.findByUserAndTitleFn == nil {
		panic("unexpected FindByUserAndTitle call")
	}
	return f.findByUserAndTitleFn(ctx, userID, title)
}

func (f *fakeCredentialsRepo) Update(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	if f.updateFn == nil {
		panic("unexpected Update call")
	}
	return f.updateFn(ctx, c)
}

func (f *fakeCredentialsRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected Delete call")
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeCredentialsRepo) DeleteAllForUser(ctx context.Context, userID int64) error {
	if f.deleteAllForUserFn == nil {
		panic("unexpected DeleteAllForUser call")
	}
	return f.deleteAllForUserFn(ctx, userID)
}

// fakeRepoManager hands out the same fakes regardless of the DBTX, which is
// exactly what the services expect from the real manager.
type fakeRepoManager struct {
	users       *fakeUsersRepo
	notes       *fakeNotesRepo
	cards       *fakeCardsRepo
	credentials *fakeCredentialsRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notes.Repository                 { return m.notes }
func (m *fakeRepoManager) Cards(db dbx.DBTX) cards.Repository                 { return m.cards }
func (m *fakeRepoManager) Credentials(db dbx.DBTX) credentials.Repository     { return m.credentials }
func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
