package security

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	passwords := []string{"test", "correct horse battery staple", "pässwörd", ""}

	for _, p := range passwords {
		hash, err := HashPassword(p)
		require.NoError(t, err)

		assert.False(t, IsLegacyHash(hash))
		assert.True(t, CheckPasswordHash(p, hash), "password %q", p)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same")
	require.NoError(t, err)
	h2, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	hash, err := HashPassword("p1")
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("p2", hash))
	assert.False(t, CheckPasswordHash("P1", hash))
}

func TestCheckPasswordHash_Legacy(t *testing.T) {
	sum := sha256.Sum256([]byte("test"))
	legacy := base64.StdEncoding.EncodeToString(sum[:])

	assert.True(t, IsLegacyHash(legacy))
	assert.True(t, CheckPasswordHash("test", legacy))
	assert.False(t, CheckPasswordHash("test2", legacy))
	assert.False(t, CheckPasswordHash("test", ""))
}
