package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lana-app/backend/internal/apperror"
	"github.com/lana-app/backend/internal/logger"
	_ "github.com/lana-app/backend/internal/model" // swagger types
)

type ChartHandler struct {
	service ChartServiceInterface
}

func NewChartHandler(service ChartServiceInterface) *ChartHandler {
	return &ChartHandler{service: service}
}

// Data godoc
// @Summary Get chart data
// @Description Sum the user's transactions per category, bucketed into incomes and expenses
// @Tags grafica
// @Produce json
// @Param usuarioID path string true "User ID"
// @Success 200 {object} model.ChartData
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /grafica/{usuarioID} [get]
func (h *ChartHandler) Data(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "usuarioID"))
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid user id"))
		return
	}
	r = r.WithContext(logger.WithUserID(r.Context(), userID.String()))

	data, err := h.service.Data(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, data)
}
