package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lana-app/backend/internal/apperror"
	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/pkg/currency"
)

// MockAccountRepo for testing
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, a *model.Account) error {
	args := m.Called(ctx, a)
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepo) List(ctx context.Context, userID *uuid.UUID) ([]model.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *MockAccountRepo) Update(ctx context.Context, a *model.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAccountService_Create(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("defaults currency to MXN", func(t *testing.T) {
		t.Parallel()

		repo := new(MockAccountRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Account) bool {
			return a.Currency == string(currency.DefaultCurrency)
		})).Return(nil)

		svc := NewAccountService(repo)
		account, err := svc.Create(context.Background(), CreateAccountInput{
			UserID:  userID,
			Name:    "Cartera",
			Kind:    model.AccountKindCash,
			Balance: decimal.NewFromInt(500),
		})

		assert.NoError(t, err)
		assert.Equal(t, "MXN", account.Currency)
		repo.AssertExpectations(t)
	})

	t.Run("unsupported currency is a field validation error", func(t *testing.T) {
		t.Parallel()

		repo := new(MockAccountRepo)
		svc := NewAccountService(repo)

		_, err := svc.Create(context.Background(), CreateAccountInput{
			UserID:   userID,
			Name:     "Cartera",
			Kind:     model.AccountKindCash,
			Currency: "XYZ",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "currency", appErr.Field)
		assert.True(t, errors.Is(err, apperror.ErrValidation))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("invalid kind", func(t *testing.T) {
		t.Parallel()

		repo := new(MockAccountRepo)
		svc := NewAccountService(repo)

		_, err := svc.Create(context.Background(), CreateAccountInput{
			UserID: userID,
			Name:   "Cartera",
			Kind:   model.AccountKind("wallet"),
		})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAccountService_Update_CurrencyChecked(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	bad := "XYZ"

	repo := new(MockAccountRepo)
	repo.On("GetByID", mock.Anything, accountID).Return(&model.Account{
		ID:       accountID,
		Name:     "Cartera",
		Kind:     model.AccountKindCash,
		Currency: "MXN",
	}, nil)

	svc := NewAccountService(repo)
	_, err := svc.Update(context.Background(), accountID, UpdateAccountInput{
		Currency: &bad,
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "currency", appErr.Field)
	repo.AssertNotCalled(t, "Update")
}
