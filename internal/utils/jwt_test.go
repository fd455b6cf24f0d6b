package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Run("round trip preserves identity claims", func(t *testing.T) {
		token, err := GenerateJWT("a@x.com", "Ayesha", "secret")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseJWT(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Email)
		assert.Equal(t, "Ayesha", claims.Name)
	})

	t.Run("token expires in one hour", func(t *testing.T) {
		token, err := GenerateJWT("a@x.com", "", "secret")
		require.NoError(t, err)

		claims, err := ParseJWT(token, "secret")
		require.NoError(t, err)
		lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		assert.Equal(t, float64(3600), lifetime.Seconds())
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := GenerateJWT("a@x.com", "", "secret")
		require.NoError(t, err)

		_, err = ParseJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := ParseJWT("not.a.token", "secret")
		assert.Error(t, err)
	})
}
