//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, cfg config.JWTConfig) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewService(cfg)
	require.NoError(t, err)
	return svc
}

func signRaw(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestNewService(t *testing.T) {
	t.Run("error: empty secret", func(t *testing.T) {
		_, err := jwt.NewService(config.JWTConfig{Duration: "1h"})
		assert.Error(t, err)
	})

	t.Run("error: unparsable duration", func(t *testing.T) {
		_, err := jwt.NewService(config.JWTConfig{Secret: "secret", Duration: "a day"})
		assert.ErrorContains(t, err, "JWT_DURATION")
	})
}

func TestValidateToken(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Duration: "1h"}
	svc := newService(t, cfg)
	userID := uuid.New()

	t.Run("success: issued token round trips", func(t *testing.T) {
		token, err := svc.Issue(userID, user.RoleSeller, time.Now())
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "seller", claims.Role)
	})

	t.Run("success: user taken from sub when the claim is absent", func(t *testing.T) {
		token := signRaw(t, "secret", jwt.Claims{RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		}})

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("success: expiry inside the leeway is tolerated", func(t *testing.T) {
		lenient := cfg
		lenient.Leeway = time.Minute
		token := signRaw(t, "secret", jwt.Claims{UserID: userID, RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-10 * time.Second)),
		}})

		_, err := newService(t, lenient).ValidateToken(token)
		assert.NoError(t, err)
	})

	t.Run("error: expired", func(t *testing.T) {
		token, err := svc.Issue(userID, user.RoleBuyer, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		other := cfg
		other.Secret = "other"
		token, err := newService(t, other).Issue(userID, user.RoleBuyer, time.Now())
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: non-HMAC algorithm", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{UserID: userID})
		signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: no expiry", func(t *testing.T) {
		_, err := svc.ValidateToken(signRaw(t, "secret", jwt.Claims{UserID: userID}))
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: no user at all", func(t *testing.T) {
		token := signRaw(t, "secret", jwt.Claims{
			RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
		})

		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestValidateToken_IssuerAndAudience(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Duration: "1h", Issuer: "https://auth.example.com", Audience: "tickets"}
	svc := newService(t, cfg)
	userID := uuid.New()

	t.Run("success: matching issuer and audience", func(t *testing.T) {
		token, err := svc.Issue(userID, user.RoleBuyer, time.Now())
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.NoError(t, err)
	})

	testCases := []struct {
		name   string
		mutate func(*config.JWTConfig)
	}{
		{name: "error: foreign issuer", mutate: func(c *config.JWTConfig) { c.Issuer = "https://evil.example.com" }},
		{name: "error: foreign audience", mutate: func(c *config.JWTConfig) { c.Audience = "billing" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			other := cfg
			tc.mutate(&other)
			token, err := newService(t, other).Issue(userID, user.RoleBuyer, time.Now())
			require.NoError(t, err)

			_, err = svc.ValidateToken(token)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}
