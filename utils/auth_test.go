package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw1secret")
	require.NoError(t, err)
	// The digest is never the plaintext
	assert.NotEqual(t, "pw1secret", hash)
	assert.NotContains(t, hash, "pw1secret")
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw1secret")
	require.NoError(t, err)

	assert.True(t, CheckPassword("pw1secret", hash))
	assert.False(t, CheckPassword("wrong", hash))
	// The stored digest is not accepted as the password itself
	assert.False(t, CheckPassword(hash, hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("pw1secret")
	require.NoError(t, err)
	second, err := HashPassword("pw1secret")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
