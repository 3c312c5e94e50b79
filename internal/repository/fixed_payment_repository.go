package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lana-app/backend/internal/model"
)

var ErrFixedPaymentNotFound = errors.New("fixed payment not found")

type FixedPaymentRepository struct {
	db *sqlx.DB
}

func NewFixedPaymentRepository(db *sqlx.DB) *FixedPaymentRepository {
	return &FixedPaymentRepository{db: db}
}

func (r *FixedPaymentRepository) Create(ctx context.Context, fp *model.FixedPayment) error {
	query := `
		INSERT INTO fixed_payments (id, user_id, account_id, category_id, description, amount, frequency, start_date, next_due_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING created_at`

	fp.ID = uuid.New()
	return r.db.QueryRowxContext(ctx, query,
		fp.ID, fp.UserID, fp.AccountID, fp.CategoryID, fp.Description, fp.Amount,
		fp.Frequency, fp.StartDate, fp.NextDueDate, fp.IsActive,
	).Scan(&fp.CreatedAt)
}

func (r *FixedPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FixedPayment, error) {
	var fp model.FixedPayment
	query := `SELECT * FROM fixed_payments WHERE id = $1`
	err := r.db.GetContext(ctx, &fp, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFixedPaymentNotFound
	}
	return &fp, err
}

// FixedPaymentFilters narrows List results. Nil fields are ignored.
type FixedPaymentFilters struct {
	UserID   *uuid.UUID
	IsActive *bool
}

func (r *FixedPaymentRepository) List(ctx context.Context, filters FixedPaymentFilters) ([]model.FixedPayment, error) {
	var payments []model.FixedPayment
	query := `
		SELECT * FROM fixed_payments
		WHERE ($1::uuid IS NULL OR user_id = $1)
		AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &payments, query, filters.UserID, filters.IsActive)
	return payments, err
}

// ActivePayment is one active fixed payment with its category resolved, as
// needed by the budget coverage check.
type ActivePayment struct {
	ID         uuid.UUID       `db:"id"`
	CategoryID uuid.UUID       `db:"category_id"`
	Category   string          `db:"category"`
	Amount     decimal.Decimal `db:"amount"`
}

// ListActiveWithCategory returns the user's active fixed payments joined to
// their category names.
func (r *FixedPaymentRepository) ListActiveWithCategory(ctx context.Context, userID uuid.UUID) ([]ActivePayment, error) {
	query := `
		SELECT fp.id, fp.category_id, c.name AS category, fp.amount
		FROM fixed_payments fp
		JOIN categories c ON c.id = fp.category_id
		WHERE fp.user_id = $1 AND fp.is_active`

	var payments []ActivePayment
	err := r.db.SelectContext(ctx, &payments, query, userID)
	return payments, err
}

func (r *FixedPaymentRepository) Update(ctx context.Context, fp *model.FixedPayment) error {
	query := `
		UPDATE fixed_payments
		SET account_id = $2, category_id = $3, description = $4, amount = $5, frequency = $6, start_date = $7, next_due_date = $8, is_active = $9
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		fp.ID, fp.AccountID, fp.CategoryID, fp.Description, fp.Amount,
		fp.Frequency, fp.StartDate, fp.NextDueDate, fp.IsActive,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFixedPaymentNotFound
	}
	return nil
}

func (r *FixedPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM fixed_payments WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFixedPaymentNotFound
	}
	return nil
}
