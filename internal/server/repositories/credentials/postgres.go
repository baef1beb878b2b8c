package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lucasnerism/drivenpass/internal/common"
	"github.com/lucasnerism/drivenpass/internal/dbx"
	"github.com/lucasnerism/drivenpass/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanCredential(row *sql.Row) (*models.Credential, error) {
	c := &models.Credential{}
	err := row.Scan(&c.ID, &c.Title, &c.URL, &c.Username, &c.Password, &c.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, credential *models.Credential) (*models.Credential, error) {

	query :=
		`INSERT INTO credentials (title, url, username, password, user_id)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		credential.Title, credential.URL, credential.Username,
		credential.Password, credential.UserID).Scan(&credential.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return credential, nil
}

func (r *PostgresRepository) FindAllByUser(ctx context.Context, userID int64) ([]models.Credential, error) {
	query :=
		`SELECT id, title, url, username, password, user_id FROM credentials
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Credential{}
	for rows.Next() {
		var c models.Credential
		if err := rows.Scan(&c.ID, &c.Title, &c.URL, &c.Username, &c.Password, &c.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.Credential, error) {
	query :=
		`SELECT id, title, url, username, password, user_id FROM credentials
		 WHERE id = $1
		 `

	return scanCredential(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) FindByUserAndTitle(ctx context.Context, userID int64, title string) (*models.Credential, error) {
	query :=
		`SELECT id, title, url, username, password, user_id FROM credentials
		 WHERE user_id = $1 AND title = $2
		 `

	return scanCredential(r.db.QueryRowContext(ctx, query, userID, title))
}

func (r *PostgresRepository) Update(ctx context.Context, credential *models.Credential) (*models.Credential, error) {
	query :=
		`UPDATE credentials SET title = $1, url = $2, username = $3, password = $4
		 WHERE id = $5
		 `

	res, err := r.db.ExecContext(ctx, query,
		credential.Title, credential.URL, credential.Username,
		credential.Password, credential.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrorNotFound
	}

	return credential, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM credentials
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	query :=
		`DELETE FROM credentials
		 WHERE user_id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
