package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cataloghub/backend/internal/domain/identity"
	"github.com/cataloghub/backend/internal/infrastructure/auth"
	"github.com/cataloghub/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T, expiration time.Duration) *auth.TokenService {
	t.Helper()
	return auth.NewTokenService(config.JWTConfig{
		Secret:     "test-secret-at-least-32-characters-long",
		Expiration: expiration,
		Issuer:     "cataloghub-test",
	})
}

func issueToken(t *testing.T, tokens *auth.TokenService, role identity.Role) string {
	t.Helper()
	user, err := identity.NewUser("tester", "secret123", role)
	require.NoError(t, err)
	token, _, err := tokens.Generate(user)
	require.NoError(t, err)
	return token
}

func newProtectedRouter(tokens *auth.TokenService, adminOnly bool) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)

	reached := false
	router := gin.New()

	handlers := []gin.HandlerFunc{RequireAuth(tokens)}
	if adminOnly {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	router.POST("/protected", handlers...)
	return router, &reached
}

func TestRequireAuth(t *testing.T) {
	tokens := newTokenService(t, time.Hour)

	t.Run("rejects missing header", func(t *testing.T) {
		router, reached := newProtectedRouter(tokens, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached)
		assert.Contains(t, w.Body.String(), `"error"`)
	})

	t.Run("rejects malformed header", func(t *testing.T) {
		router, reached := newProtectedRouter(tokens, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		router, reached := newProtectedRouter(tokens, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := newTokenService(t, -time.Minute)
		router, reached := newProtectedRouter(tokens, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, expired, identity.RoleAdmin))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached)
	})

	t.Run("accepts valid token", func(t *testing.T) {
		router, reached := newProtectedRouter(tokens, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, identity.RoleUser))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *reached)
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := newTokenService(t, time.Hour)

	t.Run("rejects non-admin with 403 before the handler runs", func(t *testing.T) {
		router, reached := newProtectedRouter(tokens, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, identity.RoleUser))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, *reached)
	})

	t.Run("accepts admin", func(t *testing.T) {
		router, reached := newProtectedRouter(tokens, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, identity.RoleAdmin))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *reached)
	})
}

func TestGetClaims(t *testing.T) {
	t.Run("returns nil without auth middleware", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		assert.Nil(t, GetClaims(c))
	})
}
