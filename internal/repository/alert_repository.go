package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lana-app/backend/internal/model"
)

var ErrAlertNotFound = errors.New("alert not found")

type AlertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, a *model.AlertHistory) error {
	query := `
		INSERT INTO alert_history (id, user_id, kind, message, created_at, read)
		VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING created_at`

	a.ID = uuid.New()
	return r.db.QueryRowxContext(ctx, query,
		a.ID, a.UserID, a.Kind, a.Message, a.Read,
	).Scan(&a.CreatedAt)
}

func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AlertHistory, error) {
	var a model.AlertHistory
	query := `SELECT * FROM alert_history WHERE id = $1`
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAlertNotFound
	}
	return &a, err
}

// AlertFilters narrows List results. Nil fields are ignored.
type AlertFilters struct {
	UserID *uuid.UUID
	Read   *bool
}

func (r *AlertRepository) List(ctx context.Context, filters AlertFilters) ([]model.AlertHistory, error) {
	var alerts []model.AlertHistory
	query := `
		SELECT * FROM alert_history
		WHERE ($1::uuid IS NULL OR user_id = $1)
		AND ($2::boolean IS NULL OR read = $2)
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &alerts, query, filters.UserID, filters.Read)
	return alerts, err
}

// MarkRead flags an alert as read.
func (r *AlertRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE alert_history SET read = true WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func (r *AlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM alert_history WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAlertNotFound
	}
	return nil
}
