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

// FixedPaymentRepositoryInterface defines the contract for fixed payment data
// access.
type FixedPaymentRepositoryInterface interface {
	Create(ctx context.Context, fp *model.FixedPayment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.FixedPayment, error)
	List(ctx context.Context, filters repository.FixedPaymentFilters) ([]model.FixedPayment, error)
	ListActiveWithCategory(ctx context.Context, userID uuid.UUID) ([]repository.ActivePayment, error)
	Update(ctx context.Context, fp *model.FixedPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FixedPaymentBudgetReader is the slice of budget access the coverage check
// needs. The budget table is only read when at least one active payment exists.
type FixedPaymentBudgetReader interface {
	ListForPeriod(ctx context.Context, userID uuid.UUID, period datetime.Period) ([]model.Budget, error)
}

type FixedPaymentService struct {
	repo    FixedPaymentRepositoryInterface
	budgets FixedPaymentBudgetReader
}

func NewFixedPaymentService(repo FixedPaymentRepositoryInterface, budgets FixedPaymentBudgetReader) *FixedPaymentService {
	return &FixedPaymentService{repo: repo, budgets: budgets}
}

var validPaymentFrequencies = map[model.PaymentFrequency]bool{
	model.FrequencyDaily:      true,
	model.FrequencyWeekly:     true,
	model.FrequencyBiweekly:   true,
	model.FrequencyMonthly:    true,
	model.FrequencyBimonthly:  true,
	model.FrequencyQuarterly:  true,
	model.FrequencySemiannual: true,
	model.FrequencyAnnual:     true,
}

type CreateFixedPaymentInput struct {
	UserID      uuid.UUID              `json:"userId"`
	AccountID   uuid.UUID              `json:"accountId"`
	CategoryID  uuid.UUID              `json:"categoryId"`
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount"`
	Frequency   model.PaymentFrequency `json:"frequency"`
	StartDate   datetime.Date          `json:"startDate"`
	NextDueDate datetime.Date          `json:"nextDueDate"`
	IsActive    *bool                  `json:"isActive"` // defaults to true
}

func (s *FixedPaymentService) Create(ctx context.Context, input CreateFixedPaymentInput) (*model.FixedPayment, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if input.AccountID == uuid.Nil {
		return nil, fmt.Errorf("%w: accountId is required", ErrValidation)
	}
	if input.CategoryID == uuid.Nil {
		return nil, fmt.Errorf("%w: categoryId is required", ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if input.Amount.IsNegative() || input.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !validPaymentFrequencies[input.Frequency] {
		return nil, fmt.Errorf("%w: invalid frequency %q", ErrValidation, input.Frequency)
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = datetime.Today()
	}
	nextDue := input.NextDueDate
	if nextDue.IsZero() {
		nextDue = startDate
	}

	fp := &model.FixedPayment{
		UserID:      input.UserID,
		AccountID:   input.AccountID,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		Amount:      input.Amount,
		Frequency:   input.Frequency,
		StartDate:   startDate,
		NextDueDate: nextDue,
		IsActive:    active,
	}

	if err := s.repo.Create(ctx, fp); err != nil {
		return nil, fmt.Errorf("creating fixed payment: %w", err)
	}

	return fp, nil
}

func (s *FixedPaymentService) Get(ctx context.Context, id uuid.UUID) (*model.FixedPayment, error) {
	fp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting fixed payment %s: %w", id, err)
	}
	return fp, nil
}

func (s *FixedPaymentService) List(ctx context.Context, filters repository.FixedPaymentFilters) ([]model.FixedPayment, error) {
	payments, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("listing fixed payments: %w", err)
	}
	return payments, nil
}

type UpdateFixedPaymentInput struct {
	AccountID   *uuid.UUID              `json:"accountId"`
	CategoryID  *uuid.UUID              `json:"categoryId"`
	Description *string                 `json:"description"`
	Amount      *decimal.Decimal        `json:"amount"`
	Frequency   *model.PaymentFrequency `json:"frequency"`
	StartDate   *datetime.Date          `json:"startDate"`
	NextDueDate *datetime.Date          `json:"nextDueDate"`
	IsActive    *bool                   `json:"isActive"`
}

func (s *FixedPaymentService) Update(ctx context.Context, id uuid.UUID, input UpdateFixedPaymentInput) (*model.FixedPayment, error) {
	fp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching fixed payment %s for update: %w", id, err)
	}

	if input.AccountID != nil {
		fp.AccountID = *input.AccountID
	}
	if input.CategoryID != nil {
		fp.CategoryID = *input.CategoryID
	}
	if input.Description != nil {
		if *input.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", ErrValidation)
		}
		fp.Description = *input.Description
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() || input.Amount.IsZero() {
			return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
		}
		fp.Amount = *input.Amount
	}
	if input.Frequency != nil {
		if !validPaymentFrequencies[*input.Frequency] {
			return nil, fmt.Errorf("%w: invalid frequency %q", ErrValidation, *input.Frequency)
		}
		fp.Frequency = *input.Frequency
	}
	if input.StartDate != nil {
		fp.StartDate = *input.StartDate
	}
	if input.NextDueDate != nil {
		fp.NextDueDate = *input.NextDueDate
	}
	if input.IsActive != nil {
		fp.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, fp); err != nil {
		return nil, fmt.Errorf("updating fixed payment %s: %w", id, err)
	}

	return fp, nil
}

func (s *FixedPaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting fixed payment %s: %w", id, err)
	}
	return nil
}

// BudgetCheckResult is the payload of the fixed-payment coverage check. When
// the user has no active fixed payments only Message is set; otherwise Checks
// carries one classification per payment.
type BudgetCheckResult struct {
	Message string                    `json:"message,omitempty"`
	Checks  []model.FixedPaymentCheck `json:"checks,omitempty"`
}

// ValidateBudget classifies every active fixed payment of the user against
// the budget of its category in the given period:
//
//   - no budget row for the category in that period: "sin presupuesto definido"
//   - ceiling - spent >= payment amount: "cubierto"
//   - otherwise: "excede presupuesto"
//
// With zero active payments the check short-circuits without reading budgets.
// Matching is keyed on category id; a budget for a different period never
// counts.
func (s *FixedPaymentService) ValidateBudget(ctx context.Context, userID uuid.UUID, period datetime.Period) (*BudgetCheckResult, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if !period.Valid() {
		return nil, fmt.Errorf("%w: invalid period %s", ErrValidation, period)
	}

	payments, err := s.repo.ListActiveWithCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing active fixed payments: %w", err)
	}
	if len(payments) == 0 {
		return &BudgetCheckResult{Message: "No hay pagos fijos programados."}, nil
	}

	budgets, err := s.budgets.ListForPeriod(ctx, userID, period)
	if err != nil {
		return nil, fmt.Errorf("listing budgets for %s: %w", period, err)
	}

	byCategory := make(map[uuid.UUID]model.Budget, len(budgets))
	for _, b := range budgets {
		byCategory[b.CategoryID] = b
	}

	checks := make([]model.FixedPaymentCheck, 0, len(payments))
	for _, p := range payments {
		status := model.FixedPaymentNoBudget
		if b, ok := byCategory[p.CategoryID]; ok {
			remaining := b.Ceiling.Sub(b.Spent)
			if remaining.GreaterThanOrEqual(p.Amount) {
				status = model.FixedPaymentCovered
			} else {
				status = model.FixedPaymentExceeds
			}
		}
		checks = append(checks, model.FixedPaymentCheck{
			Category: p.Category,
			Amount:   p.Amount,
			Status:   status,
		})
	}

	return &BudgetCheckResult{Checks: checks}, nil
}
