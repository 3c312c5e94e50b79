package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lana-app/backend/internal/apperror"
	"github.com/lana-app/backend/internal/logger"
	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/internal/repository"
	"github.com/lana-app/backend/internal/service"
	"github.com/lana-app/backend/pkg/datetime"
)

// ErrorResponse represents a JSON error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// MessageResponse is a confirmation payload, returned by delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondAppError writes a JSON error response from an AppError.
func respondAppError(w http.ResponseWriter, err *apperror.AppError) {
	respondJSON(w, err.StatusCode, ErrorResponse{Error: err.Message, Field: err.Field})
}

// notFoundSentinels maps repository sentinels to their client-facing 404.
var notFoundSentinels = map[error]*apperror.AppError{
	repository.ErrUserNotFound:         apperror.NotFound("usuario no encontrado"),
	repository.ErrCategoryNotFound:     apperror.NotFound("categoría no encontrada"),
	repository.ErrAccountNotFound:      apperror.NotFound("cuenta no encontrada"),
	repository.ErrTransactionNotFound:  apperror.NotFound("transacción no encontrada"),
	repository.ErrTransferNotFound:     apperror.NotFound("transferencia no encontrada"),
	repository.ErrBudgetNotFound:       apperror.NotFound("presupuesto no encontrado"),
	repository.ErrFixedPaymentNotFound: apperror.NotFound("pago fijo no encontrado"),
	repository.ErrGoalNotFound:         apperror.NotFound("meta no encontrada"),
	repository.ErrRecurringNotFound:    apperror.NotFound("transacción recurrente no encontrada"),
	repository.ErrAlertNotFound:        apperror.NotFound("alerta no encontrada"),
}

// respondServiceError maps service and repository errors onto the HTTP
// surface. Validation failures become 400, missing rows 404, duplicate
// emails 409, bad credentials 401. Anything else is logged with its cause
// and answered with an opaque 500; store internals never reach the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		respondAppError(w, appErr)
		return
	}
	for sentinel, resp := range notFoundSentinels {
		if errors.Is(err, sentinel) {
			respondAppError(w, resp)
			return
		}
	}
	switch {
	case errors.Is(err, service.ErrValidation):
		respondAppError(w, apperror.BadRequest(err.Error()))
	case errors.Is(err, service.ErrEmailTaken):
		respondAppError(w, apperror.Conflict("el correo ya está registrado"))
	case errors.Is(err, service.ErrInvalidCredentials):
		respondAppError(w, apperror.Unauthorized("contraseña incorrecta"))
	default:
		logger.FromContext(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		respondAppError(w, apperror.Internal(err))
	}
}

// parseIDParam parses the {id} chi route parameter as a UUID.
func parseIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// parseUUIDQuery parses an optional UUID query parameter. An absent or
// malformed value yields nil.
func parseUUIDQuery(r *http.Request, name string) *uuid.UUID {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// parseBoolQuery parses an optional boolean query parameter. An absent or
// malformed value yields nil.
func parseBoolQuery(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// parseCategoryKindQuery parses an optional category kind query parameter.
func parseCategoryKindQuery(r *http.Request, name string) *model.CategoryKind {
	switch k := model.CategoryKind(r.URL.Query().Get(name)); k {
	case model.CategoryKindIncome, model.CategoryKindExpense:
		return &k
	}
	return nil
}

// parseTransactionKindQuery parses an optional transaction kind query parameter.
func parseTransactionKindQuery(r *http.Request, name string) *model.TransactionKind {
	switch k := model.TransactionKind(r.URL.Query().Get(name)); k {
	case model.TransactionKindIncome, model.TransactionKindExpense, model.TransactionKindTransfer:
		return &k
	}
	return nil
}

// parsePeriodQuery reads the optional mes/anio query parameters, falling back
// to the server's current calendar month. This is the only place the clock
// decides a reconciliation period.
func parsePeriodQuery(r *http.Request) datetime.Period {
	period := datetime.CurrentPeriod()
	if raw := r.URL.Query().Get("mes"); raw != "" {
		if m, err := strconv.Atoi(raw); err == nil {
			period.Month = m
		}
	}
	if raw := r.URL.Query().Get("anio"); raw != "" {
		if y, err := strconv.Atoi(raw); err == nil {
			period.Year = y
		}
	}
	return period
}
