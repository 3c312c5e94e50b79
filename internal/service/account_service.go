package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lana-app/backend/internal/apperror"
	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/pkg/currency"
)

// AccountRepositoryInterface defines the contract for account data access.
type AccountRepositoryInterface interface {
	Create(ctx context.Context, a *model.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	List(ctx context.Context, userID *uuid.UUID) ([]model.Account, error)
	Update(ctx context.Context, a *model.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AccountService struct {
	repo AccountRepositoryInterface
}

func NewAccountService(repo AccountRepositoryInterface) *AccountService {
	return &AccountService{repo: repo}
}

var validAccountKinds = map[model.AccountKind]bool{
	model.AccountKindCash:       true,
	model.AccountKindBank:       true,
	model.AccountKindCreditCard: true,
	model.AccountKindDebitCard:  true,
	model.AccountKindInvestment: true,
	model.AccountKindSavings:    true,
	model.AccountKindOther:      true,
}

type CreateAccountInput struct {
	UserID   uuid.UUID         `json:"userId"`
	Name     string            `json:"name"`
	Kind     model.AccountKind `json:"kind"`
	Balance  decimal.Decimal   `json:"balance"`
	Currency string            `json:"currency"`
}

// Create validates and persists a new account. The currency defaults to MXN.
// The balance is stored as given; nothing reconciles it against the
// transaction ledger.
func (s *AccountService) Create(ctx context.Context, input CreateAccountInput) (*model.Account, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !validAccountKinds[input.Kind] {
		return nil, fmt.Errorf("%w: invalid account kind %q", ErrValidation, input.Kind)
	}

	curr := input.Currency
	if curr == "" {
		curr = string(currency.DefaultCurrency)
	}
	if !currency.IsValid(curr) {
		return nil, apperror.ValidationError("currency", fmt.Sprintf("moneda no soportada %q", curr))
	}

	account := &model.Account{
		UserID:   input.UserID,
		Name:     input.Name,
		Kind:     input.Kind,
		Balance:  input.Balance,
		Currency: curr,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return account, nil
}

func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting account %s: %w", id, err)
	}
	return account, nil
}

func (s *AccountService) List(ctx context.Context, userID *uuid.UUID) ([]model.Account, error) {
	accounts, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return accounts, nil
}

type UpdateAccountInput struct {
	Name     *string            `json:"name"`
	Kind     *model.AccountKind `json:"kind"`
	Balance  *decimal.Decimal   `json:"balance"`
	Currency *string            `json:"currency"`
}

func (s *AccountService) Update(ctx context.Context, id uuid.UUID, input UpdateAccountInput) (*model.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching account %s for update: %w", id, err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		account.Name = *input.Name
	}
	if input.Kind != nil {
		if !validAccountKinds[*input.Kind] {
			return nil, fmt.Errorf("%w: invalid account kind %q", ErrValidation, *input.Kind)
		}
		account.Kind = *input.Kind
	}
	if input.Balance != nil {
		account.Balance = *input.Balance
	}
	if input.Currency != nil {
		if !currency.IsValid(*input.Currency) {
			return nil, apperror.ValidationError("currency", fmt.Sprintf("moneda no soportada %q", *input.Currency))
		}
		account.Currency = *input.Currency
	}

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("updating account %s: %w", id, err)
	}

	return account, nil
}

func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting account %s: %w", id, err)
	}
	return nil
}
