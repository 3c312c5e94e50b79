package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/pkg/datetime"
)

// TransferRepositoryInterface defines the contract for transfer data access.
type TransferRepositoryInterface interface {
	Create(ctx context.Context, t *model.Transfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transfer, error)
	List(ctx context.Context, userID *uuid.UUID) ([]model.Transfer, error)
	Update(ctx context.Context, t *model.Transfer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TransferService struct {
	repo TransferRepositoryInterface
}

func NewTransferService(repo TransferRepositoryInterface) *TransferService {
	return &TransferService{repo: repo}
}

type CreateTransferInput struct {
	UserID                   uuid.UUID       `json:"userId"`
	SourceTransactionID      uuid.UUID       `json:"sourceTransactionId"`
	DestinationTransactionID uuid.UUID       `json:"destinationTransactionId"`
	Amount                   decimal.Decimal `json:"amount"`
	Date                     *datetime.Date  `json:"date"`
}

// Create records a transfer linking two existing transaction legs. The legs
// are referenced, not validated against each other.
func (s *TransferService) Create(ctx context.Context, input CreateTransferInput) (*model.Transfer, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if input.SourceTransactionID == uuid.Nil || input.DestinationTransactionID == uuid.Nil {
		return nil, fmt.Errorf("%w: both transaction legs are required", ErrValidation)
	}
	if input.SourceTransactionID == input.DestinationTransactionID {
		return nil, fmt.Errorf("%w: source and destination legs must differ", ErrValidation)
	}
	if input.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount is required", ErrValidation)
	}

	date := datetime.Today()
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	transfer := &model.Transfer{
		UserID:                   input.UserID,
		SourceTransactionID:      input.SourceTransactionID,
		DestinationTransactionID: input.DestinationTransactionID,
		Amount:                   input.Amount,
		Date:                     date,
	}

	if err := s.repo.Create(ctx, transfer); err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	return transfer, nil
}

func (s *TransferService) Get(ctx context.Context, id uuid.UUID) (*model.Transfer, error) {
	transfer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting transfer %s: %w", id, err)
	}
	return transfer, nil
}

func (s *TransferService) List(ctx context.Context, userID *uuid.UUID) ([]model.Transfer, error) {
	transfers, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	return transfers, nil
}

type UpdateTransferInput struct {
	SourceTransactionID      *uuid.UUID       `json:"sourceTransactionId"`
	DestinationTransactionID *uuid.UUID       `json:"destinationTransactionId"`
	Amount                   *decimal.Decimal `json:"amount"`
	Date                     *datetime.Date   `json:"date"`
}

func (s *TransferService) Update(ctx context.Context, id uuid.UUID, input UpdateTransferInput) (*model.Transfer, error) {
	transfer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching transfer %s for update: %w", id, err)
	}

	if input.SourceTransactionID != nil {
		transfer.SourceTransactionID = *input.SourceTransactionID
	}
	if input.DestinationTransactionID != nil {
		transfer.DestinationTransactionID = *input.DestinationTransactionID
	}
	if transfer.SourceTransactionID == transfer.DestinationTransactionID {
		return nil, fmt.Errorf("%w: source and destination legs must differ", ErrValidation)
	}
	if input.Amount != nil {
		transfer.Amount = *input.Amount
	}
	if input.Date != nil {
		transfer.Date = *input.Date
	}

	if err := s.repo.Update(ctx, transfer); err != nil {
		return nil, fmt.Errorf("updating transfer %s: %w", id, err)
	}

	return transfer, nil
}

func (s *TransferService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting transfer %s: %w", id, err)
	}
	return nil
}
