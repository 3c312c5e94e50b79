package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/pkg/datetime"
)

// MockTransactionRepo for testing
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) List(ctx context.Context, filters repository.TransactionFilters) ([]model.Transaction, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) Update(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestTransactionService_Create(t *testing.T) {
	t.Parallel()

	t.Run("date defaults to today when omitted", func(t *testing.T) {
		t.Parallel()

		repo := new(MockTransactionRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(tx *model.Transaction) bool {
			return tx.Date.Equal(datetime.Today().Time)
		})).Return(nil)
		svc := NewTransactionService(repo)

		tx, err := svc.Create(context.Background(), CreateTransactionInput{
			UserID:    uuid.New(),
			AccountID: uuid.New(),
			Amount:    decimal.NewFromFloat(150.00),
			Kind:      model.TransactionKindExpense,
		})

		assert.NoError(t, err)
		assert.False(t, tx.Date.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("explicit date preserved", func(t *testing.T) {
		t.Parallel()

		date := datetime.NewDate(2025, 3, 14)
		repo := new(MockTransactionRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(tx *model.Transaction) bool {
			return tx.Date.Equal(date.Time)
		})).Return(nil)
		svc := NewTransactionService(repo)

		_, err := svc.Create(context.Background(), CreateTransactionInput{
			UserID:    uuid.New(),
			AccountID: uuid.New(),
			Amount:    decimal.NewFromFloat(150.00),
			Kind:      model.TransactionKindIncome,
			Date:      &date,
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid kind rejected", func(t *testing.T) {
		t.Parallel()

		repo := new(MockTransactionRepo)
		svc := NewTransactionService(repo)

		_, err := svc.Create(context.Background(), CreateTransactionInput{
			UserID:    uuid.New(),
			AccountID: uuid.New(),
			Amount:    decimal.NewFromFloat(150.00),
			Kind:      "refund",
		})

		assert.ErrorIs(t, err, ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTransactionService_Update_PartialFields(t *testing.T) {
	t.Parallel()

	repo := new(MockTransactionRepo)
	svc := NewTransactionService(repo)

	id := uuid.New()
	catID := uuid.New()
	stored := &model.Transaction{
		ID:         id,
		UserID:     uuid.New(),
		AccountID:  uuid.New(),
		CategoryID: &catID,
		Amount:     decimal.NewFromInt(100),
		Kind:       model.TransactionKindExpense,
		Date:       datetime.NewDate(2025, 1, 15),
	}
	repo.On("GetByID", mock.Anything, id).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(tx *model.Transaction) bool {
		// Amount changes; kind, category and date keep their stored values.
		return tx.Amount.Equal(decimal.NewFromInt(250)) &&
			tx.Kind == model.TransactionKindExpense &&
			tx.CategoryID == &catID &&
			tx.Date.Equal(datetime.NewDate(2025, 1, 15).Time)
	})).Return(nil)

	amount := decimal.NewFromInt(250)
	updated, err := svc.Update(context.Background(), id, UpdateTransactionInput{Amount: &amount})

	assert.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(250)))
	repo.AssertExpectations(t)
}

func TestTransactionService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	repo := new(MockTransactionRepo)
	repo.On("Delete", mock.Anything, mock.Anything).Return(repository.ErrTransactionNotFound)
	svc := NewTransactionService(repo)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
}
