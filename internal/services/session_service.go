// Package services holds the business logic between handlers and storage.
package services

import (
	"crypto/subtle"
	"time"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/store"
	"sitterdesk/internal/types"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const sessionKeyPrefix = "session:"

// SessionService issues and validates sitter session tokens. Tokens live
// in the key-value store so they survive restarts when Redis is in use.
type SessionService struct {
	store      store.Store
	authConfig types.AuthConfig
	accessLog  *AccessLogService
}

// NewSessionService constructs a SessionService.
func NewSessionService(s store.Store, configManager types.ConfigManager, accessLog *AccessLogService) *SessionService {
	return &SessionService{
		store:      s,
		authConfig: configManager.GetAuthConfig(),
		accessLog:  accessLog,
	}
}

// Login validates the site password and issues a session token. The
// successful entry is written to the access log.
func (s *SessionService) Login(password, ip string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.authConfig.SitePassword)) != 1 {
		return "", app_errors.NewAuthenticationError("invalid password")
	}

	token, err := s.issueToken()
	if err != nil {
		return "", err
	}
	s.accessLog.RecordAccess("password", ip)
	return token, nil
}

// GrantQRSession issues a session for a visitor arriving through the QR
// deep link. The password check already happened at the gate; the entry
// is logged once here, at grant time, not on every request that still
// carries the access parameter.
func (s *SessionService) GrantQRSession(ip string) (string, error) {
	token, err := s.issueToken()
	if err != nil {
		return "", err
	}
	s.accessLog.RecordAccess("qr_code", ip)
	return token, nil
}

func (s *SessionService) issueToken() (string, error) {
	token := uuid.NewString()
	ttl := time.Duration(s.authConfig.SessionTTLMinutes) * time.Minute
	if err := s.store.Set(sessionKeyPrefix+token, []byte("1"), ttl); err != nil {
		logrus.WithError(err).Error("failed to persist session token")
		return "", app_errors.ErrInternalServer
	}
	return token, nil
}

// ValidateToken reports whether a session token is live.
func (s *SessionService) ValidateToken(token string) bool {
	exists, err := s.store.Exists(sessionKeyPrefix + token)
	if err != nil {
		logrus.WithError(err).Warn("session lookup failed")
		return false
	}
	return exists
}

// Logout revokes a session token. Revoking an unknown token is a no-op.
func (s *SessionService) Logout(token string) error {
	return s.store.Delete(sessionKeyPrefix + token)
}

// SessionTTL exposes the configured session lifetime.
func (s *SessionService) SessionTTL() time.Duration {
	return time.Duration(s.authConfig.SessionTTLMinutes) * time.Minute
}
