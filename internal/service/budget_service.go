package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/pkg/datetime"
)

// BudgetRepositoryInterface defines the contract for budget data access.
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, b *model.Budget) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Budget, error)
	List(ctx context.Context, userID *uuid.UUID) ([]model.Budget, error)
	ListForPeriod(ctx context.Context, userID uuid.UUID, period datetime.Period) ([]model.Budget, error)
	GetExceededForPeriod(ctx context.Context, userID uuid.UUID, period datetime.Period) ([]model.BudgetAlert, error)
	Update(ctx context.Context, b *model.Budget) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BudgetService struct {
	repo BudgetRepositoryInterface
}

func NewBudgetService(repo BudgetRepositoryInterface) *BudgetService {
	return &BudgetService{repo: repo}
}

type CreateBudgetInput struct {
	UserID     uuid.UUID       `json:"userId"`
	CategoryID uuid.UUID       `json:"categoryId"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Ceiling    decimal.Decimal `json:"ceiling"`
	Spent      decimal.Decimal `json:"spent"`
}

// Create validates and persists a budget for one (user, category, month, year)
// scope. Spent starts at whatever the caller reports; this service never
// recomputes it from the ledger.
func (s *BudgetService) Create(ctx context.Context, input CreateBudgetInput) (*model.Budget, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if input.CategoryID == uuid.Nil {
		return nil, fmt.Errorf("%w: categoryId is required", ErrValidation)
	}
	period := datetime.Period{Month: input.Month, Year: input.Year}
	if !period.Valid() {
		return nil, fmt.Errorf("%w: invalid period %d/%d", ErrValidation, input.Month, input.Year)
	}
	if input.Ceiling.IsNegative() || input.Ceiling.IsZero() {
		return nil, fmt.Errorf("%w: ceiling must be positive", ErrValidation)
	}
	if input.Spent.IsNegative() {
		return nil, fmt.Errorf("%w: spent cannot be negative", ErrValidation)
	}

	budget := &model.Budget{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		Month:      input.Month,
		Year:       input.Year,
		Ceiling:    input.Ceiling,
		Spent:      input.Spent,
	}

	if err := s.repo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("creating budget: %w", err)
	}

	return budget, nil
}

func (s *BudgetService) Get(ctx context.Context, id uuid.UUID) (*model.Budget, error) {
	budget, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting budget %s: %w", id, err)
	}
	return budget, nil
}

func (s *BudgetService) List(ctx context.Context, userID *uuid.UUID) ([]model.Budget, error) {
	budgets, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	return budgets, nil
}

type UpdateBudgetInput struct {
	CategoryID *uuid.UUID       `json:"categoryId"`
	Month      *int             `json:"month"`
	Year       *int             `json:"year"`
	Ceiling    *decimal.Decimal `json:"ceiling"`
	Spent      *decimal.Decimal `json:"spent"`
}

func (s *BudgetService) Update(ctx context.Context, id uuid.UUID, input UpdateBudgetInput) (*model.Budget, error) {
	budget, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching budget %s for update: %w", id, err)
	}

	if input.CategoryID != nil {
		budget.CategoryID = *input.CategoryID
	}
	if input.Month != nil {
		budget.Month = *input.Month
	}
	if input.Year != nil {
		budget.Year = *input.Year
	}
	if period := (datetime.Period{Month: budget.Month, Year: budget.Year}); !period.Valid() {
		return nil, fmt.Errorf("%w: invalid period %d/%d", ErrValidation, budget.Month, budget.Year)
	}
	if input.Ceiling != nil {
		if input.Ceiling.IsNegative() || input.Ceiling.IsZero() {
			return nil, fmt.Errorf("%w: ceiling must be positive", ErrValidation)
		}
		budget.Ceiling = *input.Ceiling
	}
	if input.Spent != nil {
		if input.Spent.IsNegative() {
			return nil, fmt.Errorf("%w: spent cannot be negative", ErrValidation)
		}
		budget.Spent = *input.Spent
	}

	if err := s.repo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("updating budget %s: %w", id, err)
	}

	return budget, nil
}

func (s *BudgetService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting budget %s: %w", id, err)
	}
	return nil
}

// AlertsResult is the payload of the budget alert check: every exceeded budget
// in the period plus a summary line. The wire messages predate this service
// and are kept verbatim.
type AlertsResult struct {
	Message string              `json:"message"`
	Alerts  []model.BudgetAlert `json:"alerts"`
}

// Alerts reports every budget of the user whose accumulated spend is over its
// ceiling in the given period. Excess is spent minus ceiling, rounded to two
// decimal places. Budgets with spend exactly at the ceiling never alert.
func (s *BudgetService) Alerts(ctx context.Context, userID uuid.UUID, period datetime.Period) (*AlertsResult, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if !period.Valid() {
		return nil, fmt.Errorf("%w: invalid period %s", ErrValidation, period)
	}

	alerts, err := s.repo.GetExceededForPeriod(ctx, userID, period)
	if err != nil {
		return nil, fmt.Errorf("checking exceeded budgets: %w", err)
	}

	for i := range alerts {
		alerts[i].Excess = alerts[i].Spent.Sub(alerts[i].Ceiling).Round(2)
	}

	result := &AlertsResult{Alerts: alerts}
	if len(alerts) == 0 {
		result.Message = "Todos los presupuestos están bajo control."
		result.Alerts = []model.BudgetAlert{}
	} else {
		result.Message = fmt.Sprintf("Tienes %d presupuesto(s) excedido(s).", len(alerts))
	}

	return result, nil
}
