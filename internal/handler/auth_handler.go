package handler

import (
	"strings"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest defines the payload for sitter login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token         string `json:"token"`
	ExpiresInSecs int    `json:"expires_in_secs"`
}

// Login validates the site password and issues a session token.
// POST /api/auth/login
func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	token, err := s.SessionService.Login(req.Password, c.ClientIP())
	if err != nil {
		response.ErrorI18nFromAPIError(c, app_errors.ErrUnauthorized, "auth.invalid_password")
		return
	}

	response.SuccessI18n(c, "auth.login_success", LoginResponse{
		Token:         token,
		ExpiresInSecs: int(s.SessionService.SessionTTL().Seconds()),
	})
}

// Logout revokes the current session token.
// POST /api/auth/logout
func (s *Server) Logout(c *gin.Context) {
	token := c.GetHeader("X-Session-Token")
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token = strings.TrimPrefix(auth, "Bearer ")
	}
	if token != "" {
		if err := s.SessionService.Logout(token); HandleServiceError(c, err) {
			return
		}
	}
	response.SuccessI18n(c, "auth.logout_success", nil)
}

// CheckSession reports whether the presented credentials are valid. The
// session middleware already ran, so reaching the handler means yes.
// GET /api/auth/session
func (s *Server) CheckSession(c *gin.Context) {
	response.Success(c, gin.H{"valid": true})
}
