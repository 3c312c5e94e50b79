package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/internal/service"
	"github.com/lana-app/backend/pkg/datetime"
)

// UserServiceInterface for handler testing
type UserServiceInterface interface {
	Register(ctx context.Context, input service.RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, input service.LoginInput) (*model.PublicProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryServiceInterface for handler testing
type CategoryServiceInterface interface {
	Create(ctx context.Context, input service.CreateCategoryInput) (*model.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context, filters repository.CategoryFilters) ([]model.Category, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateCategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountServiceInterface for handler testing
type AccountServiceInterface interface {
	Create(ctx context.Context, input service.CreateAccountInput) (*model.Account, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Account, error)
	List(ctx context.Context, userID *uuid.UUID) ([]model.Account, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateAccountInput) (*model.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionServiceInterface for handler testing
type TransactionServiceInterface interface {
	Create(ctx context.Context, input service.CreateTransactionInput) (*model.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context, filters repository.TransactionFilters) ([]model.Transaction, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateTransactionInput) (*model.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransferServiceInterface for handler testing
type TransferServiceInterface interface {
	Create(ctx context.Context, input service.CreateTransferInput) (*model.Transfer, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Transfer, error)
	List(ctx context.Context, userID *uuid.UUID) ([]model.Transfer, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateTransferInput) (*model.Transfer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BudgetServiceInterface for handler testing
type BudgetServiceInterface interface {
	Create(ctx context.Context, input service.CreateBudgetInput) (*model.Budget, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Budget, error)
	List(ctx context.Context, userID *uuid.UUID) ([]model.Budget, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateBudgetInput) (*model.Budget, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Alerts(ctx context.Context, userID uuid.UUID, period datetime.Period) (*service.AlertsResult, error)
}

// FixedPaymentServiceInterface for handler testing
type FixedPaymentServiceInterface interface {
	Create(ctx context.Context, input service.CreateFixedPaymentInput) (*model.FixedPayment, error)
	Get(ctx context.Context, id uuid.UUID) (*model.FixedPayment, error)
	List(ctx context.Context, filters repository.FixedPaymentFilters) ([]model.FixedPayment, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateFixedPaymentInput) (*model.FixedPayment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ValidateBudget(ctx context.Context, userID uuid.UUID, period datetime.Period) (*service.BudgetCheckResult, error)
}

// GoalServiceInterface for handler testing
type GoalServiceInterface interface {
	Create(ctx context.Context, input service.CreateGoalInput) (*model.Goal, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Goal, error)
	List(ctx context.Context, userID *uuid.UUID) ([]model.Goal, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateGoalInput) (*model.Goal, error)
	Contribute(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecurringServiceInterface for handler testing
type RecurringServiceInterface interface {
	Create(ctx context.Context, input service.CreateRecurringInput) (*model.RecurringTransaction, error)
	Get(ctx context.Context, id uuid.UUID) (*model.RecurringTransaction, error)
	List(ctx context.Context, filters repository.RecurringFilters) ([]model.RecurringTransaction, error)
	Update(ctx context.Context, id uuid.UUID, input service.UpdateRecurringInput) (*model.RecurringTransaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AlertServiceInterface for handler testing
type AlertServiceInterface interface {
	Create(ctx context.Context, input service.CreateAlertInput) (*model.AlertHistory, error)
	Get(ctx context.Context, id uuid.UUID) (*model.AlertHistory, error)
	List(ctx context.Context, filters repository.AlertFilters) ([]model.AlertHistory, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*model.AlertHistory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChartServiceInterface for handler testing
type ChartServiceInterface interface {
	Data(ctx context.Context, userID uuid.UUID) (*model.ChartData, error)
}
