package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/internal/repository"
)

// AlertRepositoryInterface defines the contract for alert history data access.
type AlertRepositoryInterface interface {
	Create(ctx context.Context, a *model.AlertHistory) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.AlertHistory, error)
	List(ctx context.Context, filters repository.AlertFilters) ([]model.AlertHistory, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AlertService records and serves the alert history. Alerts are returned to
// callers synchronously, never pushed.
type AlertService struct {
	repo AlertRepositoryInterface
}

func NewAlertService(repo AlertRepositoryInterface) *AlertService {
	return &AlertService{repo: repo}
}

var validAlertKinds = map[model.AlertKind]bool{
	model.AlertKindBudgetExceeded: true,
	model.AlertKindPaymentDueSoon: true,
	model.AlertKindLowBalance:     true,
}

type CreateAlertInput struct {
	UserID  uuid.UUID       `json:"userId"`
	Kind    model.AlertKind `json:"kind"`
	Message string          `json:"message"`
}

func (s *AlertService) Create(ctx context.Context, input CreateAlertInput) (*model.AlertHistory, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if !validAlertKinds[input.Kind] {
		return nil, fmt.Errorf("%w: invalid alert kind %q", ErrValidation, input.Kind)
	}
	if input.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	alert := &model.AlertHistory{
		UserID:  input.UserID,
		Kind:    input.Kind,
		Message: input.Message,
		Read:    false,
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("creating alert: %w", err)
	}

	return alert, nil
}

func (s *AlertService) Get(ctx context.Context, id uuid.UUID) (*model.AlertHistory, error) {
	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting alert %s: %w", id, err)
	}
	return alert, nil
}

func (s *AlertService) List(ctx context.Context, filters repository.AlertFilters) ([]model.AlertHistory, error) {
	alerts, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("listing alerts: %w", err)
	}
	return alerts, nil
}

// MarkRead flags an alert as read and returns it as stored.
func (s *AlertService) MarkRead(ctx context.Context, id uuid.UUID) (*model.AlertHistory, error) {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, fmt.Errorf("marking alert %s read: %w", id, err)
	}
	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching alert %s after mark read: %w", id, err)
	}
	return alert, nil
}

func (s *AlertService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting alert %s: %w", id, err)
	}
	return nil
}
