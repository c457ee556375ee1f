package handle

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/app/services"
)

// RequireAuth guards admin routes with the bearer session token issued at
// login.
func RequireAuth(authService *services.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				jsonError(w, http.StatusUnauthorized, core.ErrSessionExpired)
				return
			}

			if err := authService.Validate(token); err != nil {
				jsonError(w, http.StatusUnauthorized, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
