package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lana-app/backend/internal/model"
)

var ErrTransferNotFound = errors.New("transfer not found")

type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Create(ctx context.Context, t *model.Transfer) error {
	query := `
		INSERT INTO transfers (id, user_id, source_transaction_id, destination_transaction_id, amount, date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	t.ID = uuid.New()
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.SourceTransactionID, t.DestinationTransactionID, t.Amount, t.Date,
	)
	return err
}

func (r *TransferRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Transfer, error) {
	var t model.Transfer
	query := `SELECT * FROM transfers WHERE id = $1`
	err := r.db.GetContext(ctx, &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransferNotFound
	}
	return &t, err
}

func (r *TransferRepository) List(ctx context.Context, userID *uuid.UUID) ([]model.Transfer, error) {
	var transfers []model.Transfer
	query := `
		SELECT * FROM transfers
		WHERE ($1::uuid IS NULL OR user_id = $1)
		ORDER BY date DESC`
	err := r.db.SelectContext(ctx, &transfers, query, userID)
	return transfers, err
}

func (r *TransferRepository) Update(ctx context.Context, t *model.Transfer) error {
	query := `
		UPDATE transfers
		SET source_transaction_id = $2, destination_transaction_id = $3, amount = $4, date = $5
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		t.ID, t.SourceTransactionID, t.DestinationTransactionID, t.Amount, t.Date,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTransferNotFound
	}
	return nil
}

func (r *TransferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM transfers WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTransferNotFound
	}
	return nil
}
