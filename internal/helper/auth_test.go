package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(7, "student@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "student@example.com", claims.Email)
}

func TestVerifyToken_BearerPrefix(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(7, "student@example.com")
	require.NoError(t, err)

	claims, err := auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := SetupAuth("secret-a").GenerateToken(7, "student@example.com")
	require.NoError(t, err)

	_, err = SetupAuth("secret-b").VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.VerifyToken("not.a.jwt")
	assert.Error(t, err)

	_, err = auth.VerifyToken("")
	assert.Error(t, err)
}

func TestGenerateToken_RequiresInputs(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.GenerateToken(0, "student@example.com")
	assert.Error(t, err)

	_, err = auth.GenerateToken(7, "")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2!"), bcrypt.MinCost)
	require.NoError(t, err)

	auth := SetupAuth("test-secret")
	assert.NoError(t, auth.VerifyPassword("hunter2!", string(hash)))
	assert.Error(t, auth.VerifyPassword("wrong", string(hash)))
}
