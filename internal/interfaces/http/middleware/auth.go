package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/infrastructure/auth"
	"github.com/tokopos/backend/internal/interfaces/http/dto"
)

// Context keys and headers used by the auth middleware. The store and user
// keys match what handlers read.
const (
	StoreIDKey     = "store_id"
	UserIDKey      = "user_id"
	ClaimsKey      = "jwt_claims"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
	StoreHeaderKey = "X-Store-ID"
	UserHeaderKey  = "X-User-ID"
)

// AuthConfig holds configuration for the auth middleware
type AuthConfig struct {
	JWTService *auth.JWTService
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// AllowHeaderFallback accepts X-Store-ID and X-User-ID headers when no
	// bearer token is present. For local development only.
	AllowHeaderFallback bool
	Logger              *zap.Logger
}

// DefaultAuthConfig returns default auth middleware configuration
func DefaultAuthConfig(jwtService *auth.JWTService) AuthConfig {
	return AuthConfig{
		JWTService: jwtService,
		SkipPaths:  []string{"/health", "/healthz", "/ready"},
	}
}

// Auth creates authentication middleware that resolves the store and user
// context from a bearer token
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return AuthWithConfig(DefaultAuthConfig(jwtService))
}

// AuthWithConfig creates authentication middleware with custom config
func AuthWithConfig(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			if cfg.AllowHeaderFallback && headerFallback(c) {
				c.Next()
				return
			}
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Debug("Token validation failed", zap.Error(err))
			}
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		storeID, err := claims.GetStoreUUID()
		if err != nil {
			abortUnauthorized(c, "Invalid store claim")
			return
		}
		userID, err := claims.GetUserUUID()
		if err != nil {
			abortUnauthorized(c, "Invalid user claim")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(StoreIDKey, storeID)
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// headerFallback resolves store and user context from plain headers.
// Returns false when the headers are missing or malformed.
func headerFallback(c *gin.Context) bool {
	storeID, err := uuid.Parse(c.GetHeader(StoreHeaderKey))
	if err != nil {
		return false
	}
	userID, err := uuid.Parse(c.GetHeader(UserHeaderKey))
	if err != nil {
		return false
	}
	c.Set(StoreIDKey, storeID)
	c.Set(UserIDKey, userID)
	return true
}

func abortUnauthorized(c *gin.Context, message string) {
	requestID := ""
	if id, ok := c.Get("request_id"); ok {
		if s, ok := id.(string); ok {
			requestID = s
		}
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message, requestID))
}
