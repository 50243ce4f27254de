package services

import (
	"testing"
	"time"

	"github.com/agatodfddd/luxora-store/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		JWTSecret:       "test-secret",
		AdminSessionTTL: time.Hour,
		AdminUsername:   "admin",
		AdminPassword:   "correct-horse",
	}
}

func TestLogin(t *testing.T) {
	service := NewAuthService(testSecurityConfig(), testLogger())

	t.Run("issues a signed admin token", func(t *testing.T) {
		token, ttl, err := service.Login("admin", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, time.Hour, ttl)

		parsed, err := jwt.ParseWithClaims(token, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)

		claims := parsed.Claims.(*AdminClaims)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login("admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty password", func(t *testing.T) {
		_, _, err := service.Login("admin", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("username defaults when omitted", func(t *testing.T) {
		token, _, err := service.Login("", "correct-horse")
		require.NoError(t, err)

		parsed, err := jwt.ParseWithClaims(token, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", parsed.Claims.(*AdminClaims).Username)
	})
}
