package middleware

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeout bounds handler execution by deadline on the request
// context. Batch formatting honors the context between columns, so a
// timed-out run stops reading and writing and surfaces a TIMEOUT error.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
