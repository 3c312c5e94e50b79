package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/pkg/datetime"
)

// GoalRepositoryInterface defines the contract for savings goal data access.
type GoalRepositoryInterface interface {
	Create(ctx context.Context, g *model.Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Goal, error)
	List(ctx context.Context, userID *uuid.UUID) ([]model.Goal, error)
	Update(ctx context.Context, g *model.Goal) error
	AddContribution(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalService struct {
	repo GoalRepositoryInterface
}

func NewGoalService(repo GoalRepositoryInterface) *GoalService {
	return &GoalService{repo: repo}
}

type CreateGoalInput struct {
	UserID        uuid.UUID       `json:"userId"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	StartDate     *datetime.Date  `json:"startDate"`
	TargetDate    *datetime.Date  `json:"targetDate"`
}

func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*model.Goal, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.TargetAmount.IsNegative() || input.TargetAmount.IsZero() {
		return nil, fmt.Errorf("%w: targetAmount must be positive", ErrValidation)
	}
	if input.CurrentAmount.IsNegative() {
		return nil, fmt.Errorf("%w: currentAmount cannot be negative", ErrValidation)
	}

	goal := &model.Goal{
		UserID:        input.UserID,
		Name:          input.Name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		StartDate:     input.StartDate,
		TargetDate:    input.TargetDate,
		Completed:     input.CurrentAmount.GreaterThanOrEqual(input.TargetAmount),
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Get(ctx context.Context, id uuid.UUID) (*model.Goal, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting goal %s: %w", id, err)
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID *uuid.UUID) ([]model.Goal, error) {
	goals, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	return goals, nil
}

type UpdateGoalInput struct {
	Name          *string          `json:"name"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	StartDate     *datetime.Date   `json:"startDate"`
	TargetDate    *datetime.Date   `json:"targetDate"`
	Completed     *bool            `json:"completed"`
}

func (s *GoalService) Update(ctx context.Context, id uuid.UUID, input UpdateGoalInput) (*model.Goal, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching goal %s for update: %w", id, err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		goal.Name = *input.Name
	}
	if input.TargetAmount != nil {
		if input.TargetAmount.IsNegative() || input.TargetAmount.IsZero() {
			return nil, fmt.Errorf("%w: targetAmount must be positive", ErrValidation)
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		if input.CurrentAmount.IsNegative() {
			return nil, fmt.Errorf("%w: currentAmount cannot be negative", ErrValidation)
		}
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.StartDate != nil {
		goal.StartDate = input.StartDate
	}
	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}
	if input.Completed != nil {
		goal.Completed = *input.Completed
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("updating goal %s: %w", id, err)
	}

	return goal, nil
}

// Contribute adds amount to the goal's accumulated total. The store applies
// the increment atomically and flips the completed flag when the target is
// reached. Returns the goal as stored after the contribution.
func (s *GoalService) Contribute(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Goal, error) {
	if amount.IsNegative() || amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if err := s.repo.AddContribution(ctx, id, amount); err != nil {
		return nil, fmt.Errorf("contributing to goal %s: %w", id, err)
	}

	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching goal %s after contribution: %w", id, err)
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting goal %s: %w", id, err)
	}
	return nil
}
