package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lana-app/backend/internal/model"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
		INSERT INTO categories (id, name, kind, user_id, parent_id, is_system, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at`

	c.ID = uuid.New()
	return r.db.QueryRowxContext(ctx, query,
		c.ID, c.Name, c.Kind, c.UserID, c.ParentID, c.IsSystem,
	).Scan(&c.CreatedAt)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	query := `SELECT * FROM categories WHERE id = $1`
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	return &c, err
}

// CategoryFilters narrows List results. Nil fields are ignored.
type CategoryFilters struct {
	UserID *uuid.UUID
	Kind   *model.CategoryKind
}

func (r *CategoryRepository) List(ctx context.Context, filters CategoryFilters) ([]model.Category, error) {
	var categories []model.Category
	query := `
		SELECT * FROM categories
		WHERE ($1::uuid IS NULL OR user_id = $1)
		AND ($2::text IS NULL OR kind = $2)
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &categories, query, filters.UserID, filters.Kind)
	return categories, err
}

func (r *CategoryRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
		UPDATE categories
		SET name = $2, kind = $3, parent_id = $4, is_system = $5
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Kind, c.ParentID, c.IsSystem)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
