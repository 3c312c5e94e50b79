package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/lana-app/backend/internal/apperror"
	_ "github.com/lana-app/backend/internal/model" // swagger types
	"github.com/lana-app/backend/internal/service"
)

type GoalHandler struct {
	service GoalServiceInterface
}

func NewGoalHandler(service GoalServiceInterface) *GoalHandler {
	return &GoalHandler{service: service}
}

// Create godoc
// @Summary Create a savings goal
// @Tags metas
// @Accept json
// @Produce json
// @Param input body service.CreateGoalInput true "Goal data"
// @Success 201 {object} model.Goal
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metas [post]
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateGoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	goal, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

// Get godoc
// @Summary Get a savings goal
// @Tags metas
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} model.Goal
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /metas/{id} [get]
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	goal, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

// List godoc
// @Summary List savings goals
// @Tags metas
// @Produce json
// @Param usuarioId query string false "Filter by user ID"
// @Success 200 {array} model.Goal
// @Failure 500 {object} ErrorResponse
// @Router /metas [get]
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.service.List(r.Context(), parseUUIDQuery(r, "usuarioId"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, goals)
}

// Update godoc
// @Summary Update a savings goal
// @Tags metas
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param input body service.UpdateGoalInput true "Fields to update"
// @Success 200 {object} model.Goal
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metas/{id} [put]
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	var input service.UpdateGoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	goal, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

// ContributeRequest is the abonar payload.
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// Contribute godoc
// @Summary Contribute to a savings goal
// @Description Add an amount to the goal's accumulated total; completion flips automatically
// @Tags metas
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param input body ContributeRequest true "Contribution amount"
// @Success 200 {object} model.Goal
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metas/{id}/abonar [post]
func (h *GoalHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	var req ContributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	goal, err := h.service.Contribute(r.Context(), id, req.Amount)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

// Delete godoc
// @Summary Delete a savings goal
// @Tags metas
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metas/{id} [delete]
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Meta eliminada exitosamente"})
}
