package handler

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lana-app/backend/internal/logger"
)

// RequestContext copies the chi request id into the logger context so that
// error log lines written further down the chain carry it.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
			r = r.WithContext(logger.WithRequestID(r.Context(), reqID))
		}
		next.ServeHTTP(w, r)
	})
}
