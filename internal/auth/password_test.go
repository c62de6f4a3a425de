package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("abc123!")
	require.NoError(t, err)

	assert.NotEqual(t, "abc123!", hash, "hash must differ from plaintext")
	assert.True(t, CheckPasswordHash("abc123!", hash))
	assert.False(t, CheckPasswordHash("abc123?", hash))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)

	again, err := HashPassword("abc123!")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "salt should make every hash unique")
}

func TestCheckPasswordHash_GarbageHash(t *testing.T) {
	t.Parallel()
	assert.False(t, CheckPasswordHash("abc123!", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("abc123!", ""))
}
