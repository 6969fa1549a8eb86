package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sitterdesk/internal/i18n"
	"sitterdesk/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := i18n.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

type fakeSessions struct {
	valid  map[string]bool
	grants int
}

func (f *fakeSessions) ValidateToken(token string) bool { return f.valid[token] }

func (f *fakeSessions) GrantQRSession(ip string) (string, error) {
	f.grants++
	token := "qr-token"
	f.valid[token] = true
	return token, nil
}

func authRouter(sessions *fakeSessions) *gin.Engine {
	authConfig := types.AuthConfig{SitePassword: "house-password", AdminKey: "admin-key"}
	r := gin.New()
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	protected := r.Group("", SessionAuth(authConfig, sessions))
	protected.GET("/api/property", func(c *gin.Context) { c.Status(http.StatusOK) })
	admin := protected.Group("", AdminAuth(authConfig))
	admin.POST("/api/pets", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestSessionAuth(t *testing.T) {
	sessions := &fakeSessions{valid: map[string]bool{"good-token": true}}
	r := authRouter(sessions)

	t.Run("NoCredentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/property", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ValidBearerToken", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/property", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/property", nil)
		req.Header.Set("X-Session-Token", "bad-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("QRCodeAccessParam", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/property?access=house-password", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, sessions.grants)
		assert.Equal(t, "qr-token", w.Header().Get("X-Session-Token"))
	})

	t.Run("QRSessionSkipsFurtherGrants", func(t *testing.T) {
		// The issued token wins over the still-present access parameter,
		// so repeated QR page loads do not mint sessions per request.
		grantsBefore := sessions.grants
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/property?access=house-password", nil)
		req.Header.Set("X-Session-Token", "qr-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, grantsBefore, sessions.grants)
	})

	t.Run("WrongAccessParam", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/property?access=wrong", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("HealthSkipsAuth", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAdminAuth(t *testing.T) {
	sessions := &fakeSessions{valid: map[string]bool{"good-token": true}}
	r := authRouter(sessions)

	t.Run("SessionAloneCannotMutate", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/pets", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("AdminKeyAllowsMutation", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/pets", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		req.Header.Set("X-Admin-Key", "admin-key")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("WrongAdminKey", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/pets", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		req.Header.Set("X-Admin-Key", "nope")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	block := make(chan struct{})
	r.Use(RateLimiter(types.PerformanceConfig{MaxConcurrentRequests: 1}))
	r.GET("/slow", func(c *gin.Context) {
		<-block
		c.Status(http.StatusOK)
	})

	done := make(chan struct{})
	go func() {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/slow", nil))
		close(done)
	}()

	// Second request while the first holds the only slot.
	assert.Eventually(t, func() bool {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/slow", nil))
		return w.Code == http.StatusInternalServerError
	}, time.Second, 5*time.Millisecond)

	close(block)
	<-done
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestCORSPreflight(t *testing.T) {
	cfg := types.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"https://portal.example.com"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}
	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	r.ServeHTTP(w, req)
	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "https://portal.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
