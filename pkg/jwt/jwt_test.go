package jwt

import (
	"testing"
	"time"

	"carelink-backend/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})

	userID := uuid.New()
	token, err := svc.SignToken(userID, 3, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, 3, claims.RoleID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "issuer-secret"})
	verifier := NewJWTService(config.JWTConfig{Secret: "other-secret"})

	token, err := issuer.SignToken(uuid.New(), 1, time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})

	token, err := svc.SignToken(uuid.New(), 1, -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
