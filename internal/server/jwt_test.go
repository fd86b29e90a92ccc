package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiruejeta/resume-matcher/internal/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-at-least-32-characters-long",
		ExpirationHours: 1,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_EmptyToken(t *testing.T) {
	service := newTestJWTService()
	_, err := service.ValidateToken("")
	require.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	service := newTestJWTService()
	_, err := service.ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	service := newTestJWTService()
	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-secret-value-here",
		ExpirationHours: 1,
	})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	// Sign a token that expired an hour ago using the same secret.
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-at-least-32-characters-long"))
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	require.Error(t, err)
}

func TestJWTService_RejectsUnexpectedSigningMethod(t *testing.T) {
	service := newTestJWTService()

	// alg=none token must never validate
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New()})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	require.Error(t, err)
}

func TestJWTService_RecruiterFromToken(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	got, err := service.RecruiterFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = service.RecruiterFromToken("not.a.token")
	require.Error(t, err)
}
