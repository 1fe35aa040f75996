package controller

import (
	"context"
	"net/http"
	"time"
)

// WithTimeout returns a middleware that bounds every request context by d.
// Handlers observe the deadline through their provider calls and render the
// resulting TIMEOUT error in their own format. A non-positive d disables it.
func WithTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
