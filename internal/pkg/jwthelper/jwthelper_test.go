package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("test-key", 42, "staff")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("test-key", token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "staff", claims.Role)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := GenerateToken("test-key", 42, "staff")
	require.NoError(t, err)

	_, err = ParseToken("other-key", token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("test-key", "not.a.token")
	assert.Error(t, err)
}
