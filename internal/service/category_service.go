package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/internal/repository"
)

// CategoryRepositoryInterface defines the contract for category data access.
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, c *model.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context, filters repository.CategoryFilters) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryService struct {
	repo CategoryRepositoryInterface
}

func NewCategoryService(repo CategoryRepositoryInterface) *CategoryService {
	return &CategoryService{repo: repo}
}

type CreateCategoryInput struct {
	Name     string             `json:"name"`
	Kind     model.CategoryKind `json:"kind"`
	UserID   *uuid.UUID         `json:"userId"` // nil creates a system-wide category
	ParentID *uuid.UUID         `json:"parentId"`
	IsSystem bool               `json:"isSystem"`
}

// Create validates and persists a new category. The kind is fixed here for
// the category's lifetime; all aggregation bucketing relies on it.
func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*model.Category, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Kind != model.CategoryKindIncome && input.Kind != model.CategoryKindExpense {
		return nil, fmt.Errorf("%w: kind must be income or expense", ErrValidation)
	}

	category := &model.Category{
		Name:     input.Name,
		Kind:     input.Kind,
		UserID:   input.UserID,
		ParentID: input.ParentID,
		IsSystem: input.IsSystem,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting category %s: %w", id, err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, filters repository.CategoryFilters) ([]model.Category, error) {
	categories, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// UpdateCategoryInput carries a partial update. Kind is deliberately absent:
// a category's kind cannot change after creation.
type UpdateCategoryInput struct {
	Name     *string    `json:"name"`
	ParentID *uuid.UUID `json:"parentId"`
	IsSystem *bool      `json:"isSystem"`
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching category %s for update: %w", id, err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		category.Name = *input.Name
	}
	if input.ParentID != nil {
		category.ParentID = input.ParentID
	}
	if input.IsSystem != nil {
		category.IsSystem = *input.IsSystem
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("updating category %s: %w", id, err)
	}

	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting category %s: %w", id, err)
	}
	return nil
}
