package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lana-app/backend/internal/apperror"
	_ "github.com/lana-app/backend/internal/model" // swagger types
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/internal/service"
)

type RecurringHandler struct {
	service RecurringServiceInterface
}

func NewRecurringHandler(service RecurringServiceInterface) *RecurringHandler {
	return &RecurringHandler{service: service}
}

// Create godoc
// @Summary Create a recurring transaction
// @Description Register a recurring transaction template; it is never materialized automatically
// @Tags transacciones-recurrentes
// @Accept json
// @Produce json
// @Param input body service.CreateRecurringInput true "Recurring transaction data"
// @Success 201 {object} model.RecurringTransaction
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transacciones-recurrentes [post]
func (h *RecurringHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateRecurringInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	rt, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, rt)
}

// Get godoc
// @Summary Get a recurring transaction
// @Tags transacciones-recurrentes
// @Produce json
// @Param id path string true "Recurring transaction ID"
// @Success 200 {object} model.RecurringTransaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transacciones-recurrentes/{id} [get]
func (h *RecurringHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	rt, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, rt)
}

// List godoc
// @Summary List recurring transactions
// @Tags transacciones-recurrentes
// @Produce json
// @Param usuarioId query string false "Filter by user ID"
// @Param tipo query string false "Filter by kind (income|expense|transfer)"
// @Param activo query bool false "Filter by active flag"
// @Success 200 {array} model.RecurringTransaction
// @Failure 500 {object} ErrorResponse
// @Router /transacciones-recurrentes [get]
func (h *RecurringHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := repository.RecurringFilters{
		UserID:   parseUUIDQuery(r, "usuarioId"),
		Kind:     parseTransactionKindQuery(r, "tipo"),
		IsActive: parseBoolQuery(r, "activo"),
	}

	rts, err := h.service.List(r.Context(), filters)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, rts)
}

// Update godoc
// @Summary Update a recurring transaction
// @Tags transacciones-recurrentes
// @Accept json
// @Produce json
// @Param id path string true "Recurring transaction ID"
// @Param input body service.UpdateRecurringInput true "Fields to update"
// @Success 200 {object} model.RecurringTransaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transacciones-recurrentes/{id} [put]
func (h *RecurringHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	var input service.UpdateRecurringInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	rt, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, rt)
}

// Delete godoc
// @Summary Delete a recurring transaction
// @Tags transacciones-recurrentes
// @Produce json
// @Param id path string true "Recurring transaction ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transacciones-recurrentes/{id} [delete]
func (h *RecurringHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Transacción recurrente eliminada exitosamente"})
}
