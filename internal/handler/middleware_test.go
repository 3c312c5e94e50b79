package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/lana-app/backend/internal/logger"
)

func TestRequestContext_CarriesRequestID(t *testing.T) {
	var enriched bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		enriched = logger.FromContext(r.Context()) != logger.Logger()
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)

	// chi's RequestID middleware runs first in the router stack
	chimiddleware.RequestID(RequestContext(inner)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, enriched, "the request id must reach the logger context")
}

func TestRequestContext_NoIDLeavesDefault(t *testing.T) {
	var enriched bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		enriched = logger.FromContext(r.Context()) != logger.Logger()
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)

	RequestContext(inner).ServeHTTP(rr, req)

	assert.False(t, enriched)
}
