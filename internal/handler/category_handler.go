package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lana-app/backend/internal/apperror"
	_ "github.com/lana-app/backend/internal/model" // swagger types
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/internal/service"
)

type CategoryHandler struct {
	service CategoryServiceInterface
}

func NewCategoryHandler(service CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create godoc
// @Summary Create a category
// @Description Create an income or expense category; the kind is immutable afterwards
// @Tags categorias
// @Accept json
// @Produce json
// @Param input body service.CreateCategoryInput true "Category data"
// @Success 201 {object} model.Category
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /categorias [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	category, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, category)
}

// Get godoc
// @Summary Get a category
// @Tags categorias
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} model.Category
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /categorias/{id} [get]
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	category, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// List godoc
// @Summary List categories
// @Description List categories, optionally filtered by owner and kind
// @Tags categorias
// @Produce json
// @Param usuarioId query string false "Filter by user ID"
// @Param tipo query string false "Filter by kind (income|expense)"
// @Success 200 {array} model.Category
// @Failure 500 {object} ErrorResponse
// @Router /categorias [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := repository.CategoryFilters{
		UserID: parseUUIDQuery(r, "usuarioId"),
		Kind:   parseCategoryKindQuery(r, "tipo"),
	}

	categories, err := h.service.List(r.Context(), filters)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// Update godoc
// @Summary Update a category
// @Description Partially update a category; the kind cannot change
// @Tags categorias
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param input body service.UpdateCategoryInput true "Fields to update"
// @Success 200 {object} model.Category
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /categorias/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	var input service.UpdateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	category, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// Delete godoc
// @Summary Delete a category
// @Tags categorias
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /categorias/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Categoría eliminada exitosamente"})
}
