// Package middleware provides HTTP middleware for the web server.
package middleware

import (
	"net/http"
	"strings"

	"github.com/asredigitalgroup-rgb/disti-board/internal/core"
)

// Identity lifts the externally verified user email from the named trusted
// header into the request context. Requests without the header proceed as
// anonymous; authorization decisions belong to the core services.
func Identity(header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := strings.TrimSpace(r.Header.Get(header))
			if email != "" {
				r = r.WithContext(core.ContextWithEmail(r.Context(), email))
			}
			next.ServeHTTP(w, r)
		})
	}
}
