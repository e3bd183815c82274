package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "admin123"))
	assert.False(t, VerifyPassword(hash, "admin124"))
}

func TestLegacyPlaintextPasswordsStillWork(t *testing.T) {
	// Rows predating the hashing migration store the password as-is.
	assert.True(t, VerifyPassword("admin123", "admin123"))
	assert.False(t, VerifyPassword("admin123", "wrong"))
}

func TestEmptyPasswordNeverVerifies(t *testing.T) {
	assert.False(t, VerifyPassword("", "admin123"))

	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.False(t, VerifyPassword(hash, ""))
}
