package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/pkg/datetime"
)

// RecurringRepositoryInterface defines the contract for recurring transaction
// data access.
type RecurringRepositoryInterface interface {
	Create(ctx context.Context, rt *model.RecurringTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.RecurringTransaction, error)
	List(ctx context.Context, filters repository.RecurringFilters) ([]model.RecurringTransaction, error)
	Update(ctx context.Context, rt *model.RecurringTransaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecurringService manages recurring transaction templates. Templates are
// never materialized into the ledger automatically.
type RecurringService struct {
	repo RecurringRepositoryInterface
}

func NewRecurringService(repo RecurringRepositoryInterface) *RecurringService {
	return &RecurringService{repo: repo}
}

var validRecurringFrequencies = map[model.RecurringFrequency]bool{
	model.RecurringDaily:   true,
	model.RecurringWeekly:  true,
	model.RecurringMonthly: true,
	model.RecurringAnnual:  true,
}

type CreateRecurringInput struct {
	UserID      uuid.UUID                 `json:"userId"`
	Description *string                   `json:"description"`
	Amount      decimal.Decimal           `json:"amount"`
	CategoryID  *uuid.UUID                `json:"categoryId"`
	AccountID   *uuid.UUID                `json:"accountId"`
	Kind        model.TransactionKind     `json:"kind"`
	Frequency   *model.RecurringFrequency `json:"frequency"`
	StartDate   datetime.Date             `json:"startDate"`
	EndDate     *datetime.Date            `json:"endDate"`
	IsActive    *bool                     `json:"isActive"` // defaults to true
}

func (s *RecurringService) Create(ctx context.Context, input CreateRecurringInput) (*model.RecurringTransaction, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if !validTransactionKind(input.Kind) {
		return nil, fmt.Errorf("%w: invalid transaction kind %q", ErrValidation, input.Kind)
	}
	if input.Amount.IsNegative() || input.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if input.Frequency != nil && !validRecurringFrequencies[*input.Frequency] {
		return nil, fmt.Errorf("%w: invalid frequency %q", ErrValidation, *input.Frequency)
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = datetime.Today()
	}

	rt := &model.RecurringTransaction{
		UserID:      input.UserID,
		Description: input.Description,
		Amount:      input.Amount,
		CategoryID:  input.CategoryID,
		AccountID:   input.AccountID,
		Kind:        input.Kind,
		Frequency:   input.Frequency,
		StartDate:   startDate,
		EndDate:     input.EndDate,
		IsActive:    active,
	}

	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, fmt.Errorf("creating recurring transaction: %w", err)
	}

	return rt, nil
}

func (s *RecurringService) Get(ctx context.Context, id uuid.UUID) (*model.RecurringTransaction, error) {
	rt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting recurring transaction %s: %w", id, err)
	}
	return rt, nil
}

func (s *RecurringService) List(ctx context.Context, filters repository.RecurringFilters) ([]model.RecurringTransaction, error) {
	rts, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("listing recurring transactions: %w", err)
	}
	return rts, nil
}

type UpdateRecurringInput struct {
	Description *string                   `json:"description"`
	Amount      *decimal.Decimal          `json:"amount"`
	CategoryID  *uuid.UUID                `json:"categoryId"`
	AccountID   *uuid.UUID                `json:"accountId"`
	Kind        *model.TransactionKind    `json:"kind"`
	Frequency   *model.RecurringFrequency `json:"frequency"`
	StartDate   *datetime.Date            `json:"startDate"`
	EndDate     *datetime.Date            `json:"endDate"`
	IsActive    *bool                     `json:"isActive"`
}

func (s *RecurringService) Update(ctx context.Context, id uuid.UUID, input UpdateRecurringInput) (*model.RecurringTransaction, error) {
	rt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching recurring transaction %s for update: %w", id, err)
	}

	if input.Description != nil {
		rt.Description = input.Description
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() || input.Amount.IsZero() {
			return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
		}
		rt.Amount = *input.Amount
	}
	if input.CategoryID != nil {
		rt.CategoryID = input.CategoryID
	}
	if input.AccountID != nil {
		rt.AccountID = input.AccountID
	}
	if input.Kind != nil {
		if !validTransactionKind(*input.Kind) {
			return nil, fmt.Errorf("%w: invalid transaction kind %q", ErrValidation, *input.Kind)
		}
		rt.Kind = *input.Kind
	}
	if input.Frequency != nil {
		if !validRecurringFrequencies[*input.Frequency] {
			return nil, fmt.Errorf("%w: invalid frequency %q", ErrValidation, *input.Frequency)
		}
		rt.Frequency = input.Frequency
	}
	if input.StartDate != nil {
		rt.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		rt.EndDate = input.EndDate
	}
	if input.IsActive != nil {
		rt.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, rt); err != nil {
		return nil, fmt.Errorf("updating recurring transaction %s: %w", id, err)
	}

	return rt, nil
}

func (s *RecurringService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting recurring transaction %s: %w", id, err)
	}
	return nil
}
