// Package middleware provides HTTP middleware for the application
package middleware

import (
	"crypto/subtle"
	"strings"
	"time"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/response"
	"sitterdesk/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionValidator checks sitter session tokens and issues one for
// visitors arriving through the QR deep link.
type SessionValidator interface {
	ValidateToken(token string) bool
	GrantQRSession(ip string) (string, error)
}

// Logger creates a request logging middleware.
func Logger(config types.LogConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		method := c.Request.Method
		statusCode := c.Writer.Status()

		// Health checks only get logged when they fail.
		if isMonitoringEndpoint(path) {
			if statusCode >= 400 {
				logrus.Warnf("%s %s - %d - %v", method, path, statusCode, latency)
			}
			return
		}

		if statusCode >= 500 {
			logrus.Errorf("%s %s - %d - %v", method, path, statusCode, latency)
		} else if statusCode >= 400 {
			logrus.Warnf("%s %s - %d - %v", method, path, statusCode, latency)
		} else {
			logrus.Infof("%s %s - %d - %v", method, path, statusCode, latency)
		}
	}
}

// CORS creates a CORS middleware with preflight handling.
func CORS(config types.CORSConfig) gin.HandlerFunc {
	allowedMethods := strings.Join(config.AllowedMethods, ", ")
	allowedHeaders := strings.Join(config.AllowedHeaders, ", ")

	allowedOrigins := make(map[string]bool, len(config.AllowedOrigins))
	hasWildcard := false
	for _, origin := range config.AllowedOrigins {
		if origin == "*" {
			hasWildcard = true
		} else {
			allowedOrigins[origin] = true
		}
	}

	return func(c *gin.Context) {
		if !config.Enabled {
			c.Next()
			return
		}

		origin := c.Request.Header.Get("Origin")
		allowed := hasWildcard || allowedOrigins[origin]

		if c.Request.Method == "OPTIONS" {
			if allowed {
				setAllowOrigin(c, origin, hasWildcard)
				c.Header("Access-Control-Allow-Methods", allowedMethods)
				c.Header("Access-Control-Allow-Headers", allowedHeaders)
				c.Header("Access-Control-Max-Age", "86400")
			}
			c.AbortWithStatus(204)
			return
		}

		if allowed {
			setAllowOrigin(c, origin, hasWildcard)
			c.Header("Access-Control-Allow-Methods", allowedMethods)
			c.Header("Access-Control-Allow-Headers", allowedHeaders)
		}
		c.Next()
	}
}

func setAllowOrigin(c *gin.Context, origin string, hasWildcard bool) {
	if hasWildcard {
		c.Header("Access-Control-Allow-Origin", "*")
		return
	}
	c.Header("Access-Control-Allow-Origin", origin)
	c.Header("Vary", "Origin")
}

// SessionAuth gates sitter-facing routes. A request passes with a valid
// session token, or with the site password in the access query
// parameter, which is the QR code deep link path. A QR entry is
// converted into a regular session, returned in the X-Session-Token
// response header, so follow-up requests authenticate by token and the
// access log records the entry once instead of once per request.
func SessionAuth(authConfig types.AuthConfig, sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isMonitoringEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		if token := extractSessionToken(c); token != "" && sessions.ValidateToken(token) {
			c.Next()
			return
		}

		if access := c.Query("access"); access != "" &&
			subtle.ConstantTimeCompare([]byte(access), []byte(authConfig.SitePassword)) == 1 {
			if token, err := sessions.GrantQRSession(c.ClientIP()); err == nil {
				c.Header("X-Session-Token", token)
			}
			c.Next()
			return
		}

		response.ErrorI18nFromAPIError(c, app_errors.ErrUnauthorized, "auth.invalid_session")
		c.Abort()
	}
}

// AdminAuth gates mutating routes behind the admin key.
func AdminAuth(authConfig types.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		isValid := key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(authConfig.AdminKey)) == 1
		if !isValid {
			response.ErrorI18nFromAPIError(c, app_errors.ErrForbidden, "auth.admin_required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractSessionToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.GetHeader("X-Session-Token")
}

// Recovery creates a recovery middleware with custom error handling.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.Errorf("Panic recovered: %v", recovered)
		response.Error(c, app_errors.ErrInternalServer)
		c.Abort()
	})
}

// RateLimiter creates a simple semaphore-based rate limiting middleware.
func RateLimiter(config types.PerformanceConfig) gin.HandlerFunc {
	semaphore := make(chan struct{}, config.MaxConcurrentRequests)

	return func(c *gin.Context) {
		select {
		case semaphore <- struct{}{}:
			defer func() { <-semaphore }()
			c.Next()
		default:
			response.Error(c, app_errors.NewAPIError(app_errors.ErrInternalServer, "Too many concurrent requests"))
			c.Abort()
		}
	}
}

// ErrorHandler converts errors attached to the context into the
// standard error envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if apiErr, ok := err.(*app_errors.APIError); ok {
				response.Error(c, apiErr)
				return
			}
			logrus.Errorf("Unhandled error: %v", err)
			response.Error(c, app_errors.ErrInternalServer)
		}
	}
}

// SecurityHeaders sets common security response headers.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

func isMonitoringEndpoint(path string) bool {
	return path == "/health"
}
