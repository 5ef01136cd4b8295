package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokopos/backend/internal/infrastructure/auth"
	"github.com/tokopos/backend/internal/infrastructure/config"
)

func setupAuthTestServer(cfg AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(AuthWithConfig(cfg))
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/protected", func(c *gin.Context) {
		storeID, _ := c.Get(StoreIDKey)
		userID, _ := c.Get(UserIDKey)
		c.JSON(http.StatusOK, gin.H{
			"store_id": storeID.(uuid.UUID).String(),
			"user_id":  userID.(uuid.UUID).String(),
		})
	})
	return engine
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret: "test-secret-that-is-long-enough-123",
		Issuer: "tokopos-test",
	})

	t.Run("accepts a valid bearer token", func(t *testing.T) {
		engine := setupAuthTestServer(DefaultAuthConfig(jwtService))

		storeID := uuid.New()
		userID := uuid.New()
		token, err := jwtService.GenerateToken(storeID, userID, "Kasir Satu")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), storeID.String())
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("rejects a missing authorization header", func(t *testing.T) {
		engine := setupAuthTestServer(DefaultAuthConfig(jwtService))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		engine := setupAuthTestServer(DefaultAuthConfig(jwtService))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthHeaderKey, "Basic abcdef")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		engine := setupAuthTestServer(DefaultAuthConfig(jwtService))

		other := auth.NewJWTService(config.JWTConfig{
			Secret: "another-secret-that-is-long-enough-1",
			Issuer: "tokopos-test",
		})
		token, err := other.GenerateToken(uuid.New(), uuid.New(), "Intruder")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("skips the health endpoint", func(t *testing.T) {
		engine := setupAuthTestServer(DefaultAuthConfig(jwtService))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("header fallback resolves store context when enabled", func(t *testing.T) {
		cfg := DefaultAuthConfig(jwtService)
		cfg.AllowHeaderFallback = true
		engine := setupAuthTestServer(cfg)

		storeID := uuid.New()
		userID := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(StoreHeaderKey, storeID.String())
		req.Header.Set(UserHeaderKey, userID.String())
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), storeID.String())
	})

	t.Run("header fallback is rejected when disabled", func(t *testing.T) {
		engine := setupAuthTestServer(DefaultAuthConfig(jwtService))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(StoreHeaderKey, uuid.New().String())
		req.Header.Set(UserHeaderKey, uuid.New().String())
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
