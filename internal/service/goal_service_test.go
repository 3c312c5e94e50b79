package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/internal/repository"
)

// MockGoalRepo for testing
type MockGoalRepo struct {
	mock.Mock
}

func (m *MockGoalRepo) Create(ctx context.Context, g *model.Goal) error {
	args := m.Called(ctx, g)
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockGoalRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Goal), args.Error(1)
}

func (m *MockGoalRepo) List(ctx context.Context, userID *uuid.UUID) ([]model.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Goal), args.Error(1)
}

func (m *MockGoalRepo) Update(ctx context.Context, g *model.Goal) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGoalRepo) AddContribution(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockGoalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGoalService_Create(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name    string
		input   CreateGoalInput
		wantErr error
	}{
		{
			name: "valid goal",
			input: CreateGoalInput{
				UserID:       userID,
				Name:         "Fondo de emergencia",
				TargetAmount: decimal.NewFromInt(10000),
			},
		},
		{
			name: "missing user",
			input: CreateGoalInput{
				Name:         "Fondo de emergencia",
				TargetAmount: decimal.NewFromInt(10000),
			},
			wantErr: ErrValidation,
		},
		{
			name: "missing name",
			input: CreateGoalInput{
				UserID:       userID,
				TargetAmount: decimal.NewFromInt(10000),
			},
			wantErr: ErrValidation,
		},
		{
			name: "zero target",
			input: CreateGoalInput{
				UserID: userID,
				Name:   "Fondo de emergencia",
			},
			wantErr: ErrValidation,
		},
		{
			name: "negative current amount",
			input: CreateGoalInput{
				UserID:        userID,
				Name:          "Fondo de emergencia",
				TargetAmount:  decimal.NewFromInt(10000),
				CurrentAmount: decimal.NewFromInt(-1),
			},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := new(MockGoalRepo)
			if tt.wantErr == nil {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Goal")).Return(nil)
			}

			svc := NewGoalService(repo)
			goal, err := svc.Create(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input.Name, goal.Name)
			repo.AssertExpectations(t)
		})
	}
}

func TestGoalService_Create_MarksCompletedWhenFunded(t *testing.T) {
	t.Parallel()

	repo := new(MockGoalRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Goal")).Return(nil)

	svc := NewGoalService(repo)
	goal, err := svc.Create(context.Background(), CreateGoalInput{
		UserID:        uuid.New(),
		Name:          "Vacaciones",
		TargetAmount:  decimal.NewFromInt(5000),
		CurrentAmount: decimal.NewFromInt(5000),
	})

	assert.NoError(t, err)
	assert.True(t, goal.Completed)
}

func TestGoalService_Contribute(t *testing.T) {
	t.Parallel()

	goalID := uuid.New()

	t.Run("increments and returns stored goal", func(t *testing.T) {
		t.Parallel()

		amount := decimal.NewFromInt(6000)
		stored := &model.Goal{
			ID:            goalID,
			Name:          "Fondo de emergencia",
			TargetAmount:  decimal.NewFromInt(10000),
			CurrentAmount: decimal.NewFromInt(10000),
			Completed:     true,
		}

		repo := new(MockGoalRepo)
		repo.On("AddContribution", mock.Anything, goalID, amount).Return(nil)
		repo.On("GetByID", mock.Anything, goalID).Return(stored, nil)

		svc := NewGoalService(repo)
		goal, err := svc.Contribute(context.Background(), goalID, amount)

		assert.NoError(t, err)
		assert.True(t, goal.Completed)
		assert.True(t, goal.CurrentAmount.Equal(decimal.NewFromInt(10000)))
		repo.AssertExpectations(t)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		t.Parallel()

		repo := new(MockGoalRepo)
		svc := NewGoalService(repo)

		_, err := svc.Contribute(context.Background(), goalID, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, ErrValidation)

		_, err = svc.Contribute(context.Background(), goalID, decimal.Zero)
		assert.ErrorIs(t, err, ErrValidation)

		repo.AssertNotCalled(t, "AddContribution")
	})

	t.Run("unknown goal", func(t *testing.T) {
		t.Parallel()

		repo := new(MockGoalRepo)
		repo.On("AddContribution", mock.Anything, goalID, mock.Anything).
			Return(repository.ErrGoalNotFound)

		svc := NewGoalService(repo)
		_, err := svc.Contribute(context.Background(), goalID, decimal.NewFromInt(100))

		assert.ErrorIs(t, err, repository.ErrGoalNotFound)
	})
}

func TestGoalService_Update_OmittedCompletedUnchanged(t *testing.T) {
	t.Parallel()

	goalID := uuid.New()
	name := "Enganche casa"

	repo := new(MockGoalRepo)
	repo.On("GetByID", mock.Anything, goalID).Return(&model.Goal{
		ID:            goalID,
		Name:          "Enganche",
		TargetAmount:  decimal.NewFromInt(10000),
		CurrentAmount: decimal.NewFromInt(2000),
		Completed:     true,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(g *model.Goal) bool {
		return g.Name == name && g.Completed
	})).Return(nil)

	svc := NewGoalService(repo)
	goal, err := svc.Update(context.Background(), goalID, UpdateGoalInput{
		Name: &name,
	})

	assert.NoError(t, err)
	assert.True(t, goal.Completed, "completed was not part of the update and must keep its stored value")
	repo.AssertExpectations(t)
}

func TestGoalService_Update_ExplicitCompletedApplied(t *testing.T) {
	t.Parallel()

	goalID := uuid.New()
	completed := false

	repo := new(MockGoalRepo)
	repo.On("GetByID", mock.Anything, goalID).Return(&model.Goal{
		ID:            goalID,
		Name:          "Enganche",
		TargetAmount:  decimal.NewFromInt(10000),
		CurrentAmount: decimal.NewFromInt(12000),
		Completed:     true,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(g *model.Goal) bool {
		return !g.Completed
	})).Return(nil)

	svc := NewGoalService(repo)
	goal, err := svc.Update(context.Background(), goalID, UpdateGoalInput{
		Completed: &completed,
	})

	assert.NoError(t, err)
	assert.False(t, goal.Completed)
	repo.AssertExpectations(t)
}

func TestGoalService_Delete_PropagatesError(t *testing.T) {
	t.Parallel()

	goalID := uuid.New()
	repo := new(MockGoalRepo)
	repo.On("Delete", mock.Anything, goalID).Return(errors.New("db down"))

	svc := NewGoalService(repo)
	err := svc.Delete(context.Background(), goalID)

	assert.Error(t, err)
}
