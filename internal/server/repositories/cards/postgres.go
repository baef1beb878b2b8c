package cards

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

const cardColumns = `id, title, name, number, cvv, expiration_date, password, is_virtual, type, user_id`

func scanCard(row *sql.Row) (*models.Card, error) {
	c := &models.Card{}
	err := row.Scan(&c.ID, &c.Title, &c.Name, &c.Number, &c.CVV,
		&c.ExpirationDate, &c.Password, &c.IsVirtual, &c.Type, &c.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, card *models.Card) (*models.Card, error) {

	query :=
		`INSERT INTO cards (title, name, number, cvv, expiration_date, password, is_virtual, type, user_id)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		card.Title, card.Name, card.Number, card.CVV, card.ExpirationDate,
		card.Password, card.IsVirtual, card.Type, card.UserID).Scan(&card.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return card, nil
}

func (r *PostgresRepository) FindAllByUser(ctx context.Context, userID int64) ([]models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Card{}
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.Title, &c.Name, &c.Number, &c.CVV,
			&c.ExpirationDate, &c.Password, &c.IsVirtual, &c.Type, &c.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards
		 WHERE id = $1
		 `

	return scanCard(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) FindByUserAndTitle(ctx context.Context, userID int64, title string) (*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards
		 WHERE user_id = $1 AND title = $2
		 `

	return scanCard(r.db.QueryRowContext(ctx, query, userID, title))
}

func (r *PostgresRepository) Update(ctx context.Context, card *models.Card) (*models.Card, error) {
	query :=
		`UPDATE cards SET title = $1, name = $2, number = $3, cvv = $4,
		        expiration_date = $5, password = $6, is_virtual = $7, type = $8
		 WHERE id = $9
		 `

	res, err := r.db.ExecContext(ctx, query,
		card.Title, card.Name, card.Number, card.CVV, card.ExpirationDate,
		card.Password, card.IsVirtual, card.Type, card.ID)
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

	return card, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM cards
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
		`DELETE FROM cards
		 WHERE user_id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
