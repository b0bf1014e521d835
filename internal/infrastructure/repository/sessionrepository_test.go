package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/session"
)

func TestSessionRepository_GetByToken(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSessionRepository(gdb)
	ctx := context.Background()

	u := createTestUser(t, gdb, "alice")

	sess, err := session.New(u.ID, "203.0.113.7", time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, sess))
	require.NotZero(t, sess.ID)

	t.Run("finds session by token", func(t *testing.T) {
		found, err := repo.GetByToken(ctx, sess.Token)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID, found.UserID)
		assert.Equal(t, "203.0.113.7", found.IPAddress)
		assert.True(t, found.IsActive)
	})

	t.Run("unknown token returns nil without error", func(t *testing.T) {
		found, err := repo.GetByToken(ctx, "no-such-token")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestSessionRepository_Deactivate(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSessionRepository(gdb)
	ctx := context.Background()

	u := createTestUser(t, gdb, "bob")
	sess, err := session.New(u.ID, "203.0.113.7", time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, sess))

	t.Run("flips the active flag without deleting the row", func(t *testing.T) {
		require.NoError(t, repo.Deactivate(ctx, sess.Token))

		found, err := repo.GetByToken(ctx, sess.Token)
		require.NoError(t, err)
		require.NotNil(t, found, "the row must survive for audit attribution")
		assert.False(t, found.IsActive)
	})

	t.Run("idempotent for inactive and unknown tokens", func(t *testing.T) {
		assert.NoError(t, repo.Deactivate(ctx, sess.Token))
		assert.NoError(t, repo.Deactivate(ctx, "no-such-token"))
	})
}

func TestSessionRepository_GetByUserID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSessionRepository(gdb)
	ctx := context.Background()

	u := createTestUser(t, gdb, "carol")

	first, err := session.New(u.ID, "203.0.113.7", time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := session.New(u.ID, "203.0.113.8", time.Hour)
	require.NoError(t, err)
	second.StartTime = first.StartTime.Add(time.Minute)
	require.NoError(t, repo.Create(ctx, second))

	sessions, err := repo.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.Token, sessions[0].Token, "newest first")
}
