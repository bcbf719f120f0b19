package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "admin", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseTokenRejects(t *testing.T) {
	token, err := GenerateToken(7, "waiter", "secret", time.Hour)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseToken(token, "other")
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken("not.a.token", "secret")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		old, err := GenerateToken(7, "waiter", "secret", -time.Minute)
		require.NoError(t, err)
		_, err = ParseToken(old, "secret")
		assert.Error(t, err)
	})
}
