// Package middlewares holds HTTP middleware specific to the storefront
// surface.
package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// EchoRequestID reflects the chi request id back to the client so support
// tickets can be matched against the logs.
func EchoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set("X-Request-Id", id)
		}
		next.ServeHTTP(w, r)
	})
}
