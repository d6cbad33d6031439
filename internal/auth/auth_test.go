package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	// Known SHA-256 vector so stored digests keep verifying.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"))

	assert.True(t, CheckPassword("password", HashPassword("password")))
	assert.False(t, CheckPassword("Password", HashPassword("password")))
	assert.False(t, CheckPassword("password", ""))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "jane_doe", "admin", time.Hour)
	require.NoError(t, err)

	username, role, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "jane_doe", username)
	assert.Equal(t, "admin", role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), "jane_doe", "user", time.Hour)
	require.NoError(t, err)

	_, _, err = ValidateToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, "jane_doe", "user", -time.Minute)
	require.NoError(t, err)

	_, _, err = ValidateToken(secret, token)
	assert.Error(t, err)
}
