// Package repomanager vends repository implementations bound to a database
// handle or an open transaction, so services can run the same repositories
// inside and outside dbx.WithTx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/lucasnerism/drivenpass/internal/dbx"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/cards"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/credentials"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/notes"
	"github.com/lucasnerism/drivenpass/internal/server/repositories/users"
)

// RepositoryManager constructs repositories bound to the provided DBTX.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
	Cards(db dbx.DBTX) cards.Repository
	Credentials(db dbx.DBTX) credentials.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
