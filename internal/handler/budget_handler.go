package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lana-app/backend/internal/apperror"
	"github.com/lana-app/backend/internal/logger"
	_ "github.com/lana-app/backend/internal/model" // swagger types
	"github.com/lana-app/backend/internal/service"
)

type BudgetHandler struct {
	service BudgetServiceInterface
}

func NewBudgetHandler(service BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{service: service}
}

// Create godoc
// @Summary Create a budget
// @Description Create a spending ceiling for one (user, category, month, year) scope
// @Tags presupuestos
// @Accept json
// @Produce json
// @Param input body service.CreateBudgetInput true "Budget data"
// @Success 201 {object} model.Budget
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /presupuestos [post]
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateBudgetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	budget, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, budget)
}

// Get godoc
// @Summary Get a budget
// @Tags presupuestos
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} model.Budget
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /presupuestos/{id} [get]
func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	budget, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, budget)
}

// List godoc
// @Summary List budgets
// @Tags presupuestos
// @Produce json
// @Param usuarioId query string false "Filter by user ID"
// @Success 200 {array} model.Budget
// @Failure 500 {object} ErrorResponse
// @Router /presupuestos [get]
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.service.List(r.Context(), parseUUIDQuery(r, "usuarioId"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, budgets)
}

// Update godoc
// @Summary Update a budget
// @Description Partially update a budget; omitted fields are left unchanged
// @Tags presupuestos
// @Accept json
// @Produce json
// @Param id path string true "Budget ID"
// @Param input body service.UpdateBudgetInput true "Fields to update"
// @Success 200 {object} model.Budget
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /presupuestos/{id} [put]
func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	var input service.UpdateBudgetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	budget, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, budget)
}

// Delete godoc
// @Summary Delete a budget
// @Tags presupuestos
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /presupuestos/{id} [delete]
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Presupuesto eliminado exitosamente"})
}

// Alerts godoc
// @Summary Check exceeded budgets
// @Description List every budget of the user whose spend exceeds its ceiling for the period (defaults to the current month)
// @Tags presupuestos
// @Produce json
// @Param usuarioID path string true "User ID"
// @Param mes query int false "Month (1-12)"
// @Param anio query int false "Year"
// @Success 200 {object} service.AlertsResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /presupuesto-alerta/{usuarioID} [get]
func (h *BudgetHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "usuarioID"))
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid user id"))
		return
	}
	r = r.WithContext(logger.WithUserID(r.Context(), userID.String()))

	result, err := h.service.Alerts(r.Context(), userID, parsePeriodQuery(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
