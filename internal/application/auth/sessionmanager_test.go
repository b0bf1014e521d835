package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/session"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/migration"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/repository"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

func setupManager(t *testing.T) (*auth.SessionManager, session.Repository, uint) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))

	users := repository.NewUserRepository(gdb)
	u := &user.User{Name: "alice", PasswordHash: "h", Preferences: "{}"}
	require.NoError(t, users.Create(context.Background(), u))

	sessions := repository.NewSessionRepository(gdb)
	manager := auth.NewSessionManager(sessions, time.Hour, logger.NewLogger())
	return manager, sessions, u.ID
}

func TestSessionManager_CreateSession(t *testing.T) {
	manager, _, userID := setupManager(t)
	ctx := context.Background()

	token, err := manager.CreateSession(ctx, userID, "203.0.113.7")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	valid, sess := manager.VerifySessionForAccess(ctx, token)
	assert.True(t, valid)
	require.NotNil(t, sess)
	assert.Equal(t, userID, sess.UserID)
}

func TestSessionManager_VerifySessionForAccess(t *testing.T) {
	manager, sessions, userID := setupManager(t)
	ctx := context.Background()

	t.Run("empty token is invalid", func(t *testing.T) {
		valid, sess := manager.VerifySessionForAccess(ctx, "")
		assert.False(t, valid)
		assert.Nil(t, sess)
	})

	t.Run("unknown token is invalid, not an error", func(t *testing.T) {
		valid, sess := manager.VerifySessionForAccess(ctx, "never-issued")
		assert.False(t, valid)
		assert.Nil(t, sess)
	})

	t.Run("expired token is invalid", func(t *testing.T) {
		expired, err := session.New(userID, "203.0.113.7", time.Hour)
		require.NoError(t, err)
		expired.EndTime = time.Now().UTC().Add(-time.Minute)
		require.NoError(t, sessions.Create(ctx, expired))

		valid, _ := manager.VerifySessionForAccess(ctx, expired.Token)
		assert.False(t, valid)
	})
}

func TestSessionManager_VerifySession(t *testing.T) {
	manager, _, userID := setupManager(t)
	ctx := context.Background()

	token, err := manager.CreateSession(ctx, userID, "203.0.113.7")
	require.NoError(t, err)

	assert.True(t, manager.VerifySession(ctx, token, userID))
	assert.False(t, manager.VerifySession(ctx, token, userID+1), "identity binding must hold")
}

func TestSessionManager_DeactivateSession(t *testing.T) {
	manager, _, userID := setupManager(t)
	ctx := context.Background()

	token, err := manager.CreateSession(ctx, userID, "203.0.113.7")
	require.NoError(t, err)

	require.NoError(t, manager.DeactivateSession(ctx, token))
	valid, _ := manager.VerifySessionForAccess(ctx, token)
	assert.False(t, valid)

	t.Run("idempotent", func(t *testing.T) {
		assert.NoError(t, manager.DeactivateSession(ctx, token))
		assert.NoError(t, manager.DeactivateSession(ctx, "never-issued"))
		assert.NoError(t, manager.DeactivateSession(ctx, ""))
	})
}

func TestSessionManager_RenewSession(t *testing.T) {
	manager, _, userID := setupManager(t)
	ctx := context.Background()

	token, err := manager.CreateSession(ctx, userID, "203.0.113.7")
	require.NoError(t, err)

	t.Run("same address issues a fresh token and keeps the old one valid", func(t *testing.T) {
		renewed, err := manager.RenewSession(ctx, token, "203.0.113.7")
		require.NoError(t, err)
		assert.NotEqual(t, token, renewed)

		valid, _ := manager.VerifySessionForAccess(ctx, renewed)
		assert.True(t, valid)
		valid, _ = manager.VerifySessionForAccess(ctx, token)
		assert.True(t, valid, "renewal must not revoke the original session")
	})

	t.Run("different address is refused", func(t *testing.T) {
		_, err := manager.RenewSession(ctx, token, "198.51.100.1")
		assert.ErrorIs(t, err, auth.ErrRenewalAddressMismatch)
	})

	t.Run("invalid token is refused", func(t *testing.T) {
		_, err := manager.RenewSession(ctx, "never-issued", "203.0.113.7")
		assert.ErrorIs(t, err, auth.ErrInvalidSession)
	})
}
