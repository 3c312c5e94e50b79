package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lana-app/backend/internal/model"
)

var ErrRecurringNotFound = errors.New("recurring transaction not found")

type RecurringRepository struct {
	db *sqlx.DB
}

func NewRecurringRepository(db *sqlx.DB) *RecurringRepository {
	return &RecurringRepository{db: db}
}

func (r *RecurringRepository) Create(ctx context.Context, rt *model.RecurringTransaction) error {
	query := `
		INSERT INTO recurring_transactions (id, user_id, description, amount, category_id, account_id, kind, frequency, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	rt.ID = uuid.New()
	_, err := r.db.ExecContext(ctx, query,
		rt.ID, rt.UserID, rt.Description, rt.Amount, rt.CategoryID, rt.AccountID,
		rt.Kind, rt.Frequency, rt.StartDate, rt.EndDate, rt.IsActive,
	)
	return err
}

func (r *RecurringRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.RecurringTransaction, error) {
	var rt model.RecurringTransaction
	query := `SELECT * FROM recurring_transactions WHERE id = $1`
	err := r.db.GetContext(ctx, &rt, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecurringNotFound
	}
	return &rt, err
}

// RecurringFilters narrows List results. Nil fields are ignored.
type RecurringFilters struct {
	UserID   *uuid.UUID
	Kind     *model.TransactionKind
	IsActive *bool
}

func (r *RecurringRepository) List(ctx context.Context, filters RecurringFilters) ([]model.RecurringTransaction, error) {
	var rts []model.RecurringTransaction
	query := `
		SELECT * FROM recurring_transactions
		WHERE ($1::uuid IS NULL OR user_id = $1)
		AND ($2::text IS NULL OR kind = $2)
		AND ($3::boolean IS NULL OR is_active = $3)
		ORDER BY start_date DESC`
	err := r.db.SelectContext(ctx, &rts, query, filters.UserID, filters.Kind, filters.IsActive)
	return rts, err
}

func (r *RecurringRepository) Update(ctx context.Context, rt *model.RecurringTransaction) error {
	query := `
		UPDATE recurring_transactions
		SET description = $2, amount = $3, category_id = $4, account_id = $5, kind = $6, frequency = $7, start_date = $8, end_date = $9, is_active = $10
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		rt.ID, rt.Description, rt.Amount, rt.CategoryID, rt.AccountID,
		rt.Kind, rt.Frequency, rt.StartDate, rt.EndDate, rt.IsActive,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecurringNotFound
	}
	return nil
}

func (r *RecurringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM recurring_transactions WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecurringNotFound
	}
	return nil
}
