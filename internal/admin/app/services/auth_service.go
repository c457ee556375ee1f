package services

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/xpkg/config"
	"resto-admin/internal/xpkg/logger"
)

// AuthService guards the admin panel with opaque bearer tokens. Sessions
// live in memory; restarting the service signs everyone out, which is
// acceptable for a back-office tool.
type AuthService struct {
	cfg   config.Admin
	mylog logger.Logger

	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewAuthService(cfg config.Admin, mylog logger.Logger) *AuthService {
	return &AuthService{
		cfg:      cfg,
		mylog:    mylog,
		sessions: map[string]time.Time{},
	}
}

func (as *AuthService) Login(username, password string) (string, time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(as.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(as.cfg.Password)) == 1
	if !userOK || !passOK {
		as.mylog.Action("login_failed").Warn("Rejected login attempt", "username", username)
		return "", time.Time{}, core.ErrInvalidCredentials
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(time.Duration(as.cfg.SessionTTL) * time.Minute)

	as.mu.Lock()
	as.sessions[token] = expiresAt
	as.mu.Unlock()

	as.mylog.Action("login_succeeded").Info("Session issued", "username", username)
	return token, expiresAt, nil
}

func (as *AuthService) Validate(token string) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	expiresAt, ok := as.sessions[token]
	if !ok {
		return core.ErrSessionExpired
	}
	if time.Now().After(expiresAt) {
		delete(as.sessions, token)
		return core.ErrSessionExpired
	}
	return nil
}

func (as *AuthService) Logout(token string) {
	as.mu.Lock()
	delete(as.sessions, token)
	as.mu.Unlock()
}
