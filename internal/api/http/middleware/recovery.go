package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/dtroode/aethercure-server/internal/logger"
)

// Recover turns a panicking handler into a 500 response.
func Recover(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("Recover middleware: panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"internal server error","kind":"internal"}` + "\n"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
