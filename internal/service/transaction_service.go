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

// TransactionRepositoryInterface defines the contract for transaction data access.
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, tx *model.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context, filters repository.TransactionFilters) ([]model.Transaction, error)
	Update(ctx context.Context, tx *model.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TransactionService struct {
	repo TransactionRepositoryInterface
}

func NewTransactionService(repo TransactionRepositoryInterface) *TransactionService {
	return &TransactionService{repo: repo}
}

func validTransactionKind(k model.TransactionKind) bool {
	switch k {
	case model.TransactionKindIncome, model.TransactionKindExpense, model.TransactionKindTransfer:
		return true
	}
	return false
}

type CreateTransactionInput struct {
	UserID      uuid.UUID             `json:"userId"`
	AccountID   uuid.UUID             `json:"accountId"`
	CategoryID  *uuid.UUID            `json:"categoryId"`
	Amount      decimal.Decimal       `json:"amount"`
	Kind        model.TransactionKind `json:"kind"`
	Description *string               `json:"description"`
	Date        *datetime.Date        `json:"date"` // defaults to today
}

// Create validates and persists a new transaction. The date defaults to the
// current day when the caller omits it.
func (s *TransactionService) Create(ctx context.Context, input CreateTransactionInput) (*model.Transaction, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if input.AccountID == uuid.Nil {
		return nil, fmt.Errorf("%w: accountId is required", ErrValidation)
	}
	if !validTransactionKind(input.Kind) {
		return nil, fmt.Errorf("%w: invalid transaction kind %q", ErrValidation, input.Kind)
	}
	if input.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount is required", ErrValidation)
	}

	date := datetime.Today()
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	tx := &model.Transaction{
		UserID:      input.UserID,
		AccountID:   input.AccountID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Kind:        input.Kind,
		Description: input.Description,
		Date:        date,
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	return tx, nil
}

func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting transaction %s: %w", id, err)
	}
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context, filters repository.TransactionFilters) ([]model.Transaction, error) {
	transactions, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return transactions, nil
}

type UpdateTransactionInput struct {
	AccountID   *uuid.UUID             `json:"accountId"`
	CategoryID  *uuid.UUID             `json:"categoryId"`
	Amount      *decimal.Decimal       `json:"amount"`
	Kind        *model.TransactionKind `json:"kind"`
	Description *string                `json:"description"`
	Date        *datetime.Date         `json:"date"`
}

// Update applies a partial update: only fields present in the input
// overwrite stored values.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, input UpdateTransactionInput) (*model.Transaction, error) {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching transaction %s for update: %w", id, err)
	}

	if input.AccountID != nil {
		tx.AccountID = *input.AccountID
	}
	if input.CategoryID != nil {
		tx.CategoryID = input.CategoryID
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Kind != nil {
		if !validTransactionKind(*input.Kind) {
			return nil, fmt.Errorf("%w: invalid transaction kind %q", ErrValidation, *input.Kind)
		}
		tx.Kind = *input.Kind
	}
	if input.Description != nil {
		tx.Description = input.Description
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}

	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("updating transaction %s: %w", id, err)
	}

	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting transaction %s: %w", id, err)
	}
	return nil
}
