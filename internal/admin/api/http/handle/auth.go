package handle

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"resto-admin/internal/admin/app/services"
	"resto-admin/internal/admin/domain/dto"
	"resto-admin/internal/xpkg/logger"
)

type AuthHandler struct {
	authService *services.AuthService
	mylog       logger.Logger
}

func NewAuthHandler(authService *services.AuthService, mylog logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		mylog:       mylog,
	}
}

func (ah *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		token, expiresAt, err := ah.authService.Login(req.Username, req.Password)
		if err != nil {
			jsonError(w, http.StatusUnauthorized, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
		})
	}
}

func (ah *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			ah.authService.Logout(token)
		}
		jsonResponse(w, http.StatusNoContent, nil)
	}
}
