package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates active session bound to ip", func(t *testing.T) {
		sess, err := New(1, "203.0.113.7", time.Hour)
		require.NoError(t, err)

		assert.Equal(t, uint(1), sess.UserID)
		assert.Equal(t, "203.0.113.7", sess.IPAddress)
		assert.True(t, sess.IsActive)
		assert.True(t, sess.EndTime.After(sess.StartTime))
	})

	t.Run("token carries at least 64 bytes of entropy", func(t *testing.T) {
		sess, err := New(1, "203.0.113.7", time.Hour)
		require.NoError(t, err)

		// 64 raw bytes base64url-encoded without padding.
		assert.GreaterOrEqual(t, len(sess.Token), 86)
	})

	t.Run("tokens are unique across sessions", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			sess, err := New(1, "203.0.113.7", time.Hour)
			require.NoError(t, err)
			assert.False(t, seen[sess.Token])
			seen[sess.Token] = true
		}
	})

	t.Run("requires user id", func(t *testing.T) {
		sess, err := New(0, "203.0.113.7", time.Hour)
		assert.Error(t, err)
		assert.Nil(t, sess)
	})

	t.Run("requires positive lifetime", func(t *testing.T) {
		sess, err := New(1, "203.0.113.7", 0)
		assert.Error(t, err)
		assert.Nil(t, sess)
	})
}

func TestSession_IsValid(t *testing.T) {
	t.Run("fresh session is valid", func(t *testing.T) {
		sess, err := New(1, "203.0.113.7", time.Hour)
		require.NoError(t, err)
		assert.True(t, sess.IsValid())
	})

	t.Run("expired session is invalid", func(t *testing.T) {
		sess, err := New(1, "203.0.113.7", time.Hour)
		require.NoError(t, err)

		sess.EndTime = time.Now().UTC().Add(-time.Minute)
		assert.False(t, sess.IsValid())
	})

	t.Run("deactivated session is invalid before expiry", func(t *testing.T) {
		sess, err := New(1, "203.0.113.7", time.Hour)
		require.NoError(t, err)

		sess.Deactivate()
		assert.False(t, sess.IsValid())
	})

	t.Run("deactivate is idempotent", func(t *testing.T) {
		sess, err := New(1, "203.0.113.7", time.Hour)
		require.NoError(t, err)

		sess.Deactivate()
		sess.Deactivate()
		assert.False(t, sess.IsActive)
	})
}
