package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("secret1", hash))
	assert.False(t, VerifyPassword("secret2", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "each hash embeds its own random salt")
	assert.True(t, VerifyPassword("secret1", h1))
	assert.True(t, VerifyPassword("secret1", h2))
}

func TestHash_NeverContainsPlaintext(t *testing.T) {
	hash, err := HashPassword("supersecretvalue")
	require.NoError(t, err)
	assert.NotContains(t, string(hash), "supersecretvalue")
}

func TestVerify_LegacyHexEscapedHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	legacy := []byte(`\x` + hex.EncodeToString(hash))
	assert.True(t, VerifyPassword("secret1", legacy))
	assert.False(t, VerifyPassword("secret2", legacy))
}

func TestVerify_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("secret1", []byte("not-a-bcrypt-hash")))
	assert.False(t, VerifyPassword("secret1", nil))
	assert.False(t, VerifyPassword("secret1", []byte(`\xZZZZ`)))
}
