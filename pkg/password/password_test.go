package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password123")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123", hash)

	assert.True(t, CheckPasswordHash("Password123", hash))
	assert.False(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("", hash))
}
