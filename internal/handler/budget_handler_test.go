package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/internal/service"
	"github.com/lana-app/backend/pkg/datetime"
)

// MockBudgetService implements BudgetServiceInterface for testing
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) Create(ctx context.Context, input service.CreateBudgetInput) (*model.Budget, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Budget), args.Error(1)
}

func (m *MockBudgetService) Get(ctx context.Context, id uuid.UUID) (*model.Budget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Budget), args.Error(1)
}

func (m *MockBudgetService) List(ctx context.Context, userID *uuid.UUID) ([]model.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Budget), args.Error(1)
}

func (m *MockBudgetService) Update(ctx context.Context, id uuid.UUID, input service.UpdateBudgetInput) (*model.Budget, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Budget), args.Error(1)
}

func (m *MockBudgetService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBudgetService) Alerts(ctx context.Context, userID uuid.UUID, period datetime.Period) (*service.AlertsResult, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AlertsResult), args.Error(1)
}

func TestBudgetHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(*MockBudgetService)
		wantStatus int
	}{
		{
			name: "success",
			body: map[string]interface{}{
				"userId":     uuid.New().String(),
				"categoryId": uuid.New().String(),
				"month":      6,
				"year":       2025,
				"ceiling":    1000,
			},
			setupMock: func(m *MockBudgetService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("service.CreateBudgetInput")).Return(&model.Budget{
					ID:      uuid.New(),
					Month:   6,
					Year:    2025,
					Ceiling: decimal.NewFromInt(1000),
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid body",
			body:       "invalid json",
			setupMock:  func(m *MockBudgetService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: map[string]interface{}{"month": 13},
			setupMock: func(m *MockBudgetService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("service.CreateBudgetInput")).
					Return(nil, fmt.Errorf("%w: month must be between 1 and 12", service.ErrValidation))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: map[string]interface{}{"month": 6, "year": 2025},
			setupMock: func(m *MockBudgetService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("service.CreateBudgetInput")).Return(nil, errors.New("db error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockBudgetService)
			handler := NewBudgetHandler(mockService)
			tt.setupMock(mockService)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/presupuestos", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestBudgetHandler_Get_NotFound(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	mockService := new(MockBudgetService)
	mockService.On("Get", mock.Anything, id).Return(nil, repository.ErrBudgetNotFound)
	handler := NewBudgetHandler(mockService)

	req := withIDParam(httptest.NewRequest(http.MethodGet, "/presupuestos/"+id.String(), nil), id.String())
	w := httptest.NewRecorder()

	handler.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "presupuesto no encontrado", resp.Error)
}

func TestBudgetHandler_List_UserFilter(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mockService := new(MockBudgetService)
	mockService.On("List", mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == userID
	})).Return([]model.Budget{{ID: uuid.New(), UserID: userID}}, nil)
	handler := NewBudgetHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/presupuestos?usuarioId="+userID.String(), nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestBudgetHandler_Alerts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		userID     string
		query      string
		setupMock  func(*MockBudgetService, uuid.UUID)
		wantStatus int
	}{
		{
			name:   "explicit period",
			userID: uuid.New().String(),
			query:  "?mes=6&anio=2025",
			setupMock: func(m *MockBudgetService, userID uuid.UUID) {
				m.On("Alerts", mock.Anything, userID, datetime.Period{Month: 6, Year: 2025}).Return(&service.AlertsResult{
					Message: "Tienes 1 presupuesto(s) excedido(s).",
					Alerts: []model.BudgetAlert{
						{Category: "Comida", Ceiling: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(1200), Excess: decimal.NewFromInt(200)},
					},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "defaults to current month",
			userID: uuid.New().String(),
			setupMock: func(m *MockBudgetService, userID uuid.UUID) {
				m.On("Alerts", mock.Anything, userID, datetime.CurrentPeriod()).Return(&service.AlertsResult{
					Message: "Todos los presupuestos están bajo control.",
					Alerts:  []model.BudgetAlert{},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid user id",
			userID:     "invalid-uuid",
			setupMock:  func(m *MockBudgetService, userID uuid.UUID) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "invalid period",
			userID: uuid.New().String(),
			query:  "?mes=13",
			setupMock: func(m *MockBudgetService, userID uuid.UUID) {
				m.On("Alerts", mock.Anything, userID, mock.AnythingOfType("datetime.Period")).
					Return(nil, fmt.Errorf("%w: month must be between 1 and 12", service.ErrValidation))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockBudgetService)
			handler := NewBudgetHandler(mockService)

			userID, _ := uuid.Parse(tt.userID)
			tt.setupMock(mockService, userID)

			req := httptest.NewRequest(http.MethodGet, "/presupuesto-alerta/"+tt.userID+tt.query, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("usuarioID", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.Alerts(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestBudgetHandler_Alerts_BodyShape(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mockService := new(MockBudgetService)
	mockService.On("Alerts", mock.Anything, userID, datetime.Period{Month: 6, Year: 2025}).Return(&service.AlertsResult{
		Message: "Todos los presupuestos están bajo control.",
		Alerts:  []model.BudgetAlert{},
	}, nil)
	handler := NewBudgetHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/presupuesto-alerta/"+userID.String()+"?mes=6&anio=2025", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("usuarioID", userID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	handler.Alerts(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string              `json:"message"`
		Alerts  []model.BudgetAlert `json:"alerts"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Todos los presupuestos están bajo control.", resp.Message)
	assert.NotNil(t, resp.Alerts)
	assert.Empty(t, resp.Alerts)
}
