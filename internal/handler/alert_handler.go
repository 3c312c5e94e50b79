package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lana-app/backend/internal/apperror"
	_ "github.com/lana-app/backend/internal/model" // swagger types
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/internal/service"
)

type AlertHandler struct {
	service AlertServiceInterface
}

func NewAlertHandler(service AlertServiceInterface) *AlertHandler {
	return &AlertHandler{service: service}
}

// Create godoc
// @Summary Record an alert
// @Tags alertas
// @Accept json
// @Produce json
// @Param input body service.CreateAlertInput true "Alert data"
// @Success 201 {object} model.AlertHistory
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alertas [post]
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateAlertInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	alert, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, alert)
}

// Get godoc
// @Summary Get an alert
// @Tags alertas
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} model.AlertHistory
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /alertas/{id} [get]
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	alert, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, alert)
}

// List godoc
// @Summary List alerts
// @Tags alertas
// @Produce json
// @Param usuarioId query string false "Filter by user ID"
// @Param leida query bool false "Filter by read flag"
// @Success 200 {array} model.AlertHistory
// @Failure 500 {object} ErrorResponse
// @Router /alertas [get]
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := repository.AlertFilters{
		UserID: parseUUIDQuery(r, "usuarioId"),
		Read:   parseBoolQuery(r, "leida"),
	}

	alerts, err := h.service.List(r.Context(), filters)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, alerts)
}

// MarkRead godoc
// @Summary Mark an alert as read
// @Tags alertas
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} model.AlertHistory
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alertas/{id}/leida [put]
func (h *AlertHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	alert, err := h.service.MarkRead(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, alert)
}

// Delete godoc
// @Summary Delete an alert
// @Tags alertas
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alertas/{id} [delete]
func (h *AlertHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Alerta eliminada exitosamente"})
}
