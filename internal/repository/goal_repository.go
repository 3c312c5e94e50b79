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

var ErrGoalNotFound = errors.New("goal not found")

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, g *model.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, name, target_amount, current_amount, start_date, target_date, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at`

	g.ID = uuid.New()
	return r.db.QueryRowxContext(ctx, query,
		g.ID, g.UserID, g.Name, g.TargetAmount, g.CurrentAmount, g.StartDate, g.TargetDate, g.Completed,
	).Scan(&g.CreatedAt)
}

func (r *GoalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Goal, error) {
	var g model.Goal
	query := `SELECT * FROM goals WHERE id = $1`
	err := r.db.GetContext(ctx, &g, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	return &g, err
}

func (r *GoalRepository) List(ctx context.Context, userID *uuid.UUID) ([]model.Goal, error) {
	var goals []model.Goal
	query := `
		SELECT * FROM goals
		WHERE ($1::uuid IS NULL OR user_id = $1)
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &goals, query, userID)
	return goals, err
}

func (r *GoalRepository) Update(ctx context.Context, g *model.Goal) error {
	query := `
		UPDATE goals
		SET name = $2, target_amount = $3, current_amount = $4, start_date = $5, target_date = $6, completed = $7
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		g.ID, g.Name, g.TargetAmount, g.CurrentAmount, g.StartDate, g.TargetDate, g.Completed,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// AddContribution atomically adds amount to the goal's accumulated total and
// marks the goal completed once the target is reached.
func (r *GoalRepository) AddContribution(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE goals
		SET current_amount = current_amount + $2,
		    completed = (current_amount + $2) >= target_amount
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, amount)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM goals WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrGoalNotFound
	}
	return nil
}
