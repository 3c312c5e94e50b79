package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lana-app/backend/internal/apperror"
	_ "github.com/lana-app/backend/internal/model" // swagger types
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/internal/service"
)

type TransactionHandler struct {
	service TransactionServiceInterface
}

func NewTransactionHandler(service TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// Create godoc
// @Summary Create a transaction
// @Description Record a ledger movement; the date defaults to today
// @Tags transacciones
// @Accept json
// @Produce json
// @Param input body service.CreateTransactionInput true "Transaction data"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transacciones [post]
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	tx, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, tx)
}

// Get godoc
// @Summary Get a transaction
// @Tags transacciones
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transacciones/{id} [get]
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	tx, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, tx)
}

// List godoc
// @Summary List transactions
// @Description List transactions, optionally filtered by user, account, category and kind
// @Tags transacciones
// @Produce json
// @Param usuarioId query string false "Filter by user ID"
// @Param cuentaId query string false "Filter by account ID"
// @Param categoriaId query string false "Filter by category ID"
// @Param tipo query string false "Filter by kind (income|expense|transfer)"
// @Success 200 {array} model.Transaction
// @Failure 500 {object} ErrorResponse
// @Router /transacciones [get]
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := repository.TransactionFilters{
		UserID:     parseUUIDQuery(r, "usuarioId"),
		AccountID:  parseUUIDQuery(r, "cuentaId"),
		CategoryID: parseUUIDQuery(r, "categoriaId"),
		Kind:       parseTransactionKindQuery(r, "tipo"),
	}

	transactions, err := h.service.List(r.Context(), filters)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}

// Update godoc
// @Summary Update a transaction
// @Description Partially update a transaction; omitted fields are left unchanged
// @Tags transacciones
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param input body service.UpdateTransactionInput true "Fields to update"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transacciones/{id} [put]
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	var input service.UpdateTransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	tx, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, tx)
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transacciones
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transacciones/{id} [delete]
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Transacción eliminada exitosamente"})
}
