package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokopos/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret: "test-secret-key-that-is-long-enough!",
		Issuer: "tokopos-test",
	})
}

func TestJWTService(t *testing.T) {
	storeID := uuid.New()
	userID := uuid.New()

	t.Run("round trips a valid token", func(t *testing.T) {
		service := newTestJWTService()

		token, err := service.GenerateToken(storeID, userID, "Kasir Satu")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, storeID.String(), claims.StoreID)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "Kasir Satu", claims.Name)

		parsedStore, err := claims.GetStoreUUID()
		require.NoError(t, err)
		assert.Equal(t, storeID, parsedStore)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		service := newTestJWTService()
		other := NewJWTService(config.JWTConfig{Secret: "another-secret-key-entirely-here!!!!", Issuer: "tokopos-test"})

		token, err := other.GenerateToken(storeID, userID, "")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		service := newTestJWTService()

		_, err := service.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
