package jwt

import (
	"testing"
	"time"

	"github.com/rmohit9/Healthcare-Portal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string, access time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  access,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService("secret", time.Minute)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "dr.house")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "dr.house", claims.Username)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService("secret", time.Minute)

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "patient1")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestService("secret", time.Minute).GenerateAccessToken(uuid.New(), "u")
	require.NoError(t, err)

	_, err = newTestService("other", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService("secret", -time.Minute)

	token, _, err := svc.GenerateAccessToken(uuid.New(), "u")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
