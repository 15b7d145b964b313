package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Tokens(t *testing.T) {
	t.Run("Round-trips an identity through a token", func(t *testing.T) {
		auth := NewAuthService("test-secret")

		// When: signing an identity and parsing the result
		token, err := auth.GenerateToken("player-123")
		require.NoError(t, err)

		identity, err := auth.ParseToken(token)

		// Then: the identity survives
		require.NoError(t, err)
		assert.Equal(t, "player-123", identity)
	})

	t.Run("Rejects a token signed with another key", func(t *testing.T) {
		token, err := NewAuthService("other-secret").GenerateToken("player-123")
		require.NoError(t, err)

		_, err = NewAuthService("test-secret").ParseToken(token)

		require.Error(t, err)
	})

	t.Run("Rejects garbage", func(t *testing.T) {
		_, err := NewAuthService("test-secret").ParseToken("not-a-token")

		require.Error(t, err)
	})
}
