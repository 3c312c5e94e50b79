package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/lana-app/backend/internal/apperror"
	_ "github.com/lana-app/backend/internal/model" // swagger types
	"github.com/lana-app/backend/internal/service"
)

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterResponse is the register payload: the new identifier only, never
// the stored row.
type RegisterResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// LoginResponse wraps the public profile returned on a successful login.
type LoginResponse struct {
	Message  string    `json:"message"`
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone,omitempty"`
	Verified bool      `json:"verified"`
}

// Register godoc
// @Summary Register a user
// @Description Create a new user account with a bcrypt-hashed password
// @Tags usuarios
// @Accept json
// @Produce json
// @Param input body service.RegisterInput true "User data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usuarios [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	id, err := h.service.Register(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		Message: "Usuario creado correctamente",
		ID:      id,
	})
}

// Login godoc
// @Summary Log in
// @Description Verify email and password, returning the public profile
// @Tags usuarios
// @Accept json
// @Produce json
// @Param input body service.LoginInput true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	profile, err := h.service.Login(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Message:  "Inicio de sesión exitoso",
		ID:       profile.ID,
		FullName: profile.FullName,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Verified: profile.Verified,
	})
}

// Get godoc
// @Summary Get a user
// @Tags usuarios
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /usuarios/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// List godoc
// @Summary List users
// @Tags usuarios
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} ErrorResponse
// @Router /usuarios [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// Update godoc
// @Summary Update a user
// @Description Partially update a user; omitted fields are left unchanged
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body service.UpdateUserInput true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usuarios/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	var input service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondAppError(w, apperror.BadRequest("invalid request body"))
		return
	}

	user, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user
// @Description Delete a user; owned rows cascade per the schema
// @Tags usuarios
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondAppError(w, apperror.BadRequest("invalid id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Usuario eliminado exitosamente"})
}
