package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lana-app/backend/internal/apperror"
	"github.com/lana-app/backend/internal/logger"
	_ "github.com/lana-app/backend/internal/model" // swagger types
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/internal/service"
)

type FixedPaymentHandler struct {
	service FixedPaymentServiceInterface
}

func NewFixedPaymentHandler(service FixedPaymentServiceInterface) *FixedPaymentHandler {
	return &FixedPaymentHandler{service: service}
}

// Create godoc
// @Summary Create a fixed payment
// @Description Register a recurring obligation; it is never posted into the ledger automatically
// @Tags pagos-fijos
// @Accept json
// @Produce json
// @Param input body service.CreateFixedPaymentInput true "Fixed payment data"
// @Success 201 {object} model.FixedPayment
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pagos-fijos [post]
func (h *FixedPaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateFixedPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	fp, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, fp)
}

// Get godoc
// @Summary Get a fixed payment
// @Tags pagos-fijos
// @Produce json
// @Param id path string true "Fixed payment ID"
// @Success 200 {object} model.FixedPayment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /pagos-fijos/{id} [get]
func (h *FixedPaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	fp, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, fp)
}

// List godoc
// @Summary List fixed payments
// @Tags pagos-fijos
// @Produce json
// @Param usuarioId query string false "Filter by user ID"
// @Param activo query bool false "Filter by active flag"
// @Success 200 {array} model.FixedPayment
// @Failure 500 {object} ErrorResponse
// @Router /pagos-fijos [get]
func (h *FixedPaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := repository.FixedPaymentFilters{
		UserID:   parseUUIDQuery(r, "usuarioId"),
		IsActive: parseBoolQuery(r, "activo"),
	}

	payments, err := h.service.List(r.Context(), filters)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, payments)
}

// Update godoc
// @Summary Update a fixed payment
// @Tags pagos-fijos
// @Accept json
// @Produce json
// @Param id path string true "Fixed payment ID"
// @Param input body service.UpdateFixedPaymentInput true "Fields to update"
// @Success 200 {object} model.FixedPayment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pagos-fijos/{id} [put]
func (h *FixedPaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	var input service.UpdateFixedPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	fp, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, fp)
}

// Delete godoc
// @Summary Delete a fixed payment
// @Tags pagos-fijos
// @Produce json
// @Param id path string true "Fixed payment ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pagos-fijos/{id} [delete]
func (h *FixedPaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Pago fijo eliminado exitosamente"})
}

// ValidateBudget godoc
// @Summary Check fixed payments against budgets
// @Description Classify each active fixed payment against the budget of its category for the period (defaults to the current month)
// @Tags pagos-fijos
// @Produce json
// @Param usuarioID path string true "User ID"
// @Param mes query int false "Month (1-12)"
// @Param anio query int false "Year"
// @Success 200 {object} service.BudgetCheckResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pagos-fijos/validar-presupuesto/{usuarioID} [get]
func (h *FixedPaymentHandler) ValidateBudget(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "usuarioID"))
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid user id"))
		return
	}
	r = r.WithContext(logger.WithUserID(r.Context(), userID.String()))

	result, err := h.service.ValidateBudget(r.Context(), userID, parsePeriodQuery(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
