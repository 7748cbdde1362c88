package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	maker := NewTokenMaker("test-secret")

	access, refresh, err := maker.GenerateTokens("u1@x.com", "u1", "64ddea000000000000000001")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := maker.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "u1@x.com", claims.Email)
	assert.Equal(t, "u1", claims.Username)
	assert.Equal(t, "64ddea000000000000000001", claims.UID)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	access, _, err := NewTokenMaker("secret-a").GenerateTokens("u1@x.com", "u1", "uid")
	require.NoError(t, err)

	_, err = NewTokenMaker("secret-b").ValidateToken(access)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := NewTokenMaker("secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
