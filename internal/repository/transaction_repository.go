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

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, account_id, category_id, amount, kind, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at`

	tx.ID = uuid.New()
	return r.db.QueryRowxContext(ctx, query,
		tx.ID, tx.UserID, tx.AccountID, tx.CategoryID, tx.Amount, tx.Kind, tx.Description, tx.Date,
	).Scan(&tx.CreatedAt)
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var tx model.Transaction
	query := `SELECT * FROM transactions WHERE id = $1`
	err := r.db.GetContext(ctx, &tx, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	return &tx, err
}

// TransactionFilters narrows List results. Nil fields are ignored.
type TransactionFilters struct {
	UserID     *uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Kind       *model.TransactionKind
}

func (r *TransactionRepository) List(ctx context.Context, filters TransactionFilters) ([]model.Transaction, error) {
	var transactions []model.Transaction
	query := `
		SELECT * FROM transactions
		WHERE ($1::uuid IS NULL OR user_id = $1)
		AND ($2::uuid IS NULL OR account_id = $2)
		AND ($3::uuid IS NULL OR category_id = $3)
		AND ($4::text IS NULL OR kind = $4)
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &transactions, query,
		filters.UserID, filters.AccountID, filters.CategoryID, filters.Kind,
	)
	return transactions, err
}

func (r *TransactionRepository) Update(ctx context.Context, tx *model.Transaction) error {
	query := `
		UPDATE transactions
		SET account_id = $2, category_id = $3, amount = $4, kind = $5, description = $6, date = $7
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.AccountID, tx.CategoryID, tx.Amount, tx.Kind, tx.Description, tx.Date,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// CategoryTotal is one aggregated row of the chart query. The total stays a
// DECIMAL sum until the handler converts it at the output boundary.
type CategoryTotal struct {
	Category string             `db:"category"`
	Kind     model.CategoryKind `db:"kind"`
	Total    decimal.Decimal    `db:"total"`
}

// TotalsByCategory sums the user's transactions per category. Categories with
// no transactions do not appear (inner join).
func (r *TransactionRepository) TotalsByCategory(ctx context.Context, userID uuid.UUID) ([]CategoryTotal, error) {
	query := `
		SELECT c.name AS category, c.kind AS kind, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		GROUP BY c.id, c.name, c.kind`

	var totals []CategoryTotal
	err := r.db.SelectContext(ctx, &totals, query, userID)
	return totals, err
}
