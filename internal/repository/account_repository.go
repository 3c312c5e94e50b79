package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lana-app/backend/internal/model"
)

var ErrAccountNotFound = errors.New("account not found")

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *model.Account) error {
	query := `
		INSERT INTO accounts (id, user_id, name, kind, balance, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	a.ID = uuid.New()
	return r.db.QueryRowxContext(ctx, query,
		a.ID, a.UserID, a.Name, a.Kind, a.Balance, a.Currency,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var a model.Account
	query := `SELECT * FROM accounts WHERE id = $1`
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	return &a, err
}

func (r *AccountRepository) List(ctx context.Context, userID *uuid.UUID) ([]model.Account, error) {
	var accounts []model.Account
	query := `
		SELECT * FROM accounts
		WHERE ($1::uuid IS NULL OR user_id = $1)
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &accounts, query, userID)
	return accounts, err
}

func (r *AccountRepository) Update(ctx context.Context, a *model.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, kind = $3, balance = $4, currency = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRowxContext(ctx, query,
		a.ID, a.Name, a.Kind, a.Balance, a.Currency,
	).Scan(&a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}
	return err
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAccountNotFound
	}
	return nil
}
