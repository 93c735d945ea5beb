package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour, 42, "alice", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "user", claims.Role)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour, 42, "alice", "user")
	require.NoError(t, err)

	raw := []byte(token)
	idx := len(raw) - 4
	if raw[idx] == 'A' {
		raw[idx] = 'B'
	} else {
		raw[idx] = 'A'
	}

	_, err = ParseToken("secret", string(raw))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour, 42, "alice", "user")
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("secret", -time.Minute, 42, "alice", "user")
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	_, err := ParseToken("secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
