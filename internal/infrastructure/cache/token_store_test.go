package cache

import (
	"testing"

	"github.com/rmohit9/Healthcare-Portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenKey(t *testing.T) {
	userID := uuid.MustParse("8d7c2f7e-1a52-4f0e-9c36-0f8a6b2b9a11")

	assert.Equal(t,
		"access_token:8d7c2f7e-1a52-4f0e-9c36-0f8a6b2b9a11:abc",
		tokenKey(jwt.AccessToken, userID, "abc"))
	assert.Equal(t,
		"refresh_token:8d7c2f7e-1a52-4f0e-9c36-0f8a6b2b9a11:xyz",
		tokenKey(jwt.RefreshToken, userID, "xyz"))
}
