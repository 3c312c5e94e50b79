package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lana-app/backend/internal/apperror"
	_ "github.com/lana-app/backend/internal/model" // swagger types
	"github.com/lana-app/backend/internal/service"
)

type TransferHandler struct {
	service TransferServiceInterface
}

func NewTransferHandler(service TransferServiceInterface) *TransferHandler {
	return &TransferHandler{service: service}
}

// Create godoc
// @Summary Create a transfer
// @Description Link two transaction legs as one movement between accounts
// @Tags transferencias
// @Accept json
// @Produce json
// @Param input body service.CreateTransferInput true "Transfer data"
// @Success 201 {object} model.Transfer
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transferencias [post]
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTransferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	transfer, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, transfer)
}

// Get godoc
// @Summary Get a transfer
// @Tags transferencias
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} model.Transfer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transferencias/{id} [get]
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	transfer, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, transfer)
}

// List godoc
// @Summary List transfers
// @Tags transferencias
// @Produce json
// @Param usuarioId query string false "Filter by user ID"
// @Success 200 {array} model.Transfer
// @Failure 500 {object} ErrorResponse
// @Router /transferencias [get]
func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.service.List(r.Context(), parseUUIDQuery(r, "usuarioId"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, transfers)
}

// Update godoc
// @Summary Update a transfer
// @Tags transferencias
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID"
// @Param input body service.UpdateTransferInput true "Fields to update"
// @Success 200 {object} model.Transfer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transferencias/{id} [put]
func (h *TransferHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	var input service.UpdateTransferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	transfer, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, transfer)
}

// Delete godoc
// @Summary Delete a transfer
// @Tags transferencias
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transferencias/{id} [delete]
func (h *TransferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Transferencia eliminada exitosamente"})
}
