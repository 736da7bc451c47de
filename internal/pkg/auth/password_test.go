package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcastillo/faculty-locator/internal/pkg/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := auth.HashPassword("password")
	require.NoError(t, err)
	require.NotEqual(t, "password", hashed)

	assert.True(t, auth.CheckPassword(hashed, "password"))
	assert.False(t, auth.CheckPassword(hashed, "Password"))
	assert.False(t, auth.CheckPassword(hashed, ""))
}

func TestCheckPasswordGarbageHash(t *testing.T) {
	assert.False(t, auth.CheckPassword("not-a-bcrypt-hash", "password"))
}
