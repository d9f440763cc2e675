package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-sekolah")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-sekolah", hash)

	assert.True(t, CheckPassword(hash, "rahasia-sekolah"))
	assert.False(t, CheckPassword(hash, "salah-password"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordWithInvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}
