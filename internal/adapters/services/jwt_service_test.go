package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/adapters/services"
)

const testSecret = "test-secret-key"

func TestGenerateAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("token carries username and expiry", func(t *testing.T) {
		svc := services.NewJWT(testSecret, time.Hour)

		tokenString, expiresAt, err := svc.GenerateAccessToken(ctx, "ana")
		require.NoError(t, err)
		require.NotEmpty(t, tokenString)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

		claims := &services.Claims{}
		parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)
		assert.Equal(t, "ana", claims.Username)
		assert.Equal(t, "ana", claims.Subject)
	})

	t.Run("empty secret key is rejected", func(t *testing.T) {
		svc := services.NewJWT("", time.Hour)

		_, _, err := svc.GenerateAccessToken(ctx, "ana")
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrEmptySecretKey)
	})
}

func TestValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := services.NewJWT(testSecret, time.Hour)

	t.Run("valid token round-trips username", func(t *testing.T) {
		tokenString, _, err := svc.GenerateAccessToken(ctx, "ana")
		require.NoError(t, err)

		username, err := svc.ValidateAccessToken(ctx, tokenString)
		require.NoError(t, err)
		assert.Equal(t, "ana", username)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredSvc := services.NewJWT(testSecret, -time.Minute)

		tokenString, _, err := expiredSvc.GenerateAccessToken(ctx, "ana")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(ctx, tokenString)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		otherSvc := services.NewJWT("another-secret", time.Hour)

		tokenString, _, err := otherSvc.GenerateAccessToken(ctx, "ana")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(ctx, tokenString)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(ctx, "not.a.token")
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("unexpected signing algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, services.Claims{
			Username: "ana",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(ctx, tokenString)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("token without username claim", func(t *testing.T) {
		empty := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		tokenString, err := empty.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(ctx, tokenString)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}
