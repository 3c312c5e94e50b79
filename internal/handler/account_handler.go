package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lana-app/backend/internal/apperror"
	_ "github.com/lana-app/backend/internal/model" // swagger types
	"github.com/lana-app/backend/internal/service"
)

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// Create godoc
// @Summary Create an account
// @Description Create a money account; currency defaults to MXN
// @Tags cuentas
// @Accept json
// @Produce json
// @Param input body service.CreateAccountInput true "Account data"
// @Success 201 {object} model.Account
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cuentas [post]
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateAccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	account, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, account)
}

// Get godoc
// @Summary Get an account
// @Tags cuentas
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} model.Account
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cuentas/{id} [get]
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	account, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, account)
}

// List godoc
// @Summary List accounts
// @Tags cuentas
// @Produce json
// @Param usuarioId query string false "Filter by user ID"
// @Success 200 {array} model.Account
// @Failure 500 {object} ErrorResponse
// @Router /cuentas [get]
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context(), parseUUIDQuery(r, "usuarioId"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, accounts)
}

// Update godoc
// @Summary Update an account
// @Description Partially update an account; omitted fields are left unchanged
// @Tags cuentas
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param input body service.UpdateAccountInput true "Fields to update"
// @Success 200 {object} model.Account
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cuentas/{id} [put]
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	var input service.UpdateAccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	account, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, account)
}

// Delete godoc
// @Summary Delete an account
// @Tags cuentas
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cuentas/{id} [delete]
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Cuenta eliminada exitosamente"})
}
