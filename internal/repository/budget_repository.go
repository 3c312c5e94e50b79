package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/pkg/datetime"
)

var ErrBudgetNotFound = errors.New("budget not found")

type BudgetRepository struct {
	db *sqlx.DB
}

func NewBudgetRepository(db *sqlx.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Create(ctx context.Context, b *model.Budget) error {
	query := `
		INSERT INTO budgets (id, user_id, category_id, month, year, ceiling, spent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at`

	b.ID = uuid.New()
	return r.db.QueryRowxContext(ctx, query,
		b.ID, b.UserID, b.CategoryID, b.Month, b.Year, b.Ceiling, b.Spent,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
}

func (r *BudgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Budget, error) {
	var b model.Budget
	query := `SELECT * FROM budgets WHERE id = $1`
	err := r.db.GetContext(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBudgetNotFound
	}
	return &b, err
}

func (r *BudgetRepository) List(ctx context.Context, userID *uuid.UUID) ([]model.Budget, error) {
	var budgets []model.Budget
	query := `
		SELECT * FROM budgets
		WHERE ($1::uuid IS NULL OR user_id = $1)
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &budgets, query, userID)
	return budgets, err
}

// ListForPeriod returns the user's budgets scoped to one calendar month.
func (r *BudgetRepository) ListForPeriod(ctx context.Context, userID uuid.UUID, period datetime.Period) ([]model.Budget, error) {
	var budgets []model.Budget
	query := `
		SELECT * FROM budgets
		WHERE user_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &budgets, query, userID, period.Month, period.Year)
	return budgets, err
}

// GetExceededForPeriod returns alert rows for every budget whose accumulated
// spend is over its ceiling in the given period. The inner join to categories
// means a budget whose category was deleted cannot appear.
func (r *BudgetRepository) GetExceededForPeriod(ctx context.Context, userID uuid.UUID, period datetime.Period) ([]model.BudgetAlert, error) {
	query := `
		SELECT c.name AS category, b.ceiling AS ceiling, b.spent AS spent
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = $1 AND b.month = $2 AND b.year = $3 AND b.spent > b.ceiling`

	var alerts []model.BudgetAlert
	err := r.db.SelectContext(ctx, &alerts, query, userID, period.Month, period.Year)
	return alerts, err
}

func (r *BudgetRepository) Update(ctx context.Context, b *model.Budget) error {
	query := `
		UPDATE budgets
		SET category_id = $2, month = $3, year = $4, ceiling = $5, spent = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRowxContext(ctx, query,
		b.ID, b.CategoryID, b.Month, b.Year, b.Ceiling, b.Spent,
	).Scan(&b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBudgetNotFound
	}
	return err
}

func (r *BudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM budgets WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
