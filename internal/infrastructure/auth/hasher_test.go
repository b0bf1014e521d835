package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse", hash)
		assert.True(t, strings.HasPrefix(hash, "$2"))

		assert.NoError(t, hasher.Verify("correct horse", hash))
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		first, err := hasher.Hash("correct horse")
		require.NoError(t, err)
		second, err := hasher.Hash("correct horse")
		require.NoError(t, err)
		assert.NotEqual(t, first, second, "bcrypt embeds a fresh salt")
	})

	t.Run("wrong password and malformed hash fail with the same message", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse")
		require.NoError(t, err)

		wrongErr := hasher.Verify("wrong horse", hash)
		malformedErr := hasher.Verify("correct horse", "not-a-hash")

		require.Error(t, wrongErr)
		require.Error(t, malformedErr)
		assert.Equal(t, wrongErr.Error(), malformedErr.Error())
	})

	t.Run("out-of-range cost falls back to the default", func(t *testing.T) {
		h := NewBcryptPasswordHasher(99)
		hash, err := h.Hash("correct horse")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
