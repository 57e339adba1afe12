package middleware

import (
	"net/http"
	"runtime/debug"

	httputil "dialtone/pkg/http"
	"dialtone/pkg/logger"
)

func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("Panic recovered",
						"request_id", requestIDFrom(r),
						"error", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)

					_ = httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{
						Error: "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
