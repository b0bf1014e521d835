package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/errors"
)

func TestUserRepository_Create(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	t.Run("assigns id on insert", func(t *testing.T) {
		u := &user.User{Name: "alice", PasswordHash: "h", Preferences: "{}"}
		require.NoError(t, repo.Create(ctx, u))
		assert.NotZero(t, u.ID)
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		u := &user.User{Name: "alice", PasswordHash: "h", Preferences: "{}"}
		err := repo.Create(ctx, u)
		require.Error(t, err)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	})
}

func TestUserRepository_GetByName(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	created := createTestUser(t, gdb, "bob")

	t.Run("finds existing user", func(t *testing.T) {
		found, err := repo.GetByName(ctx, "bob")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("absent name returns nil without error", func(t *testing.T) {
		found, err := repo.GetByName(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	created := createTestUser(t, gdb, "carol")

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", found.Name)

	_, err = repo.GetByID(ctx, 99999)
	assert.True(t, errors.IsNotFound(err))
}

func TestUserRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	u := createTestUser(t, gdb, "dave")
	u.PasswordHash = "rotated"
	u.Preferences = `{"theme":"dark"}`
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "rotated", found.PasswordHash)
	assert.Equal(t, `{"theme":"dark"}`, found.Preferences)

	ghost := &user.User{ID: 99999, Name: "ghost", PasswordHash: "h"}
	assert.True(t, errors.IsNotFound(repo.Update(ctx, ghost)))
}

func TestUserRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	u := createTestUser(t, gdb, "erin")
	require.NoError(t, repo.Delete(ctx, u.ID))

	_, err := repo.GetByID(ctx, u.ID)
	assert.True(t, errors.IsNotFound(err))

	assert.True(t, errors.IsNotFound(repo.Delete(ctx, u.ID)))
}
