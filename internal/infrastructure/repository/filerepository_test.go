package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/content"
)

func TestFileRepository_CountByHash(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewFileRepository(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	project := createTestProject(t, gdb, alice.ID, "Research")
	page := createTestPage(t, gdb, project.ID, "Reading list")

	mustCreate := func(name, hash string) *content.File {
		f, err := content.NewFile(page.ID, name, hash, 10)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, f))
		return f
	}

	first := mustCreate("a.txt", "deadbeef")
	mustCreate("copy-of-a.txt", "deadbeef")
	mustCreate("b.txt", "cafef00d")

	count, err := repo.CountByHash(ctx, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.Delete(ctx, first.ID))
	count, err = repo.CountByHash(ctx, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountByHash(ctx, "unknown")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFileRepository_ListCreated(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewFileRepository(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	project := createTestProject(t, gdb, alice.ID, "Research")
	page := createTestPage(t, gdb, project.ID, "Reading list")

	bob := createTestUser(t, gdb, "bob")
	bobProject := createTestProject(t, gdb, bob.ID, "Private")
	bobPage := createTestPage(t, gdb, bobProject.ID, "Secret")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mustCreateAt := func(pageID uint, name string, at time.Time) {
		f, err := content.NewFile(pageID, name, "hash-"+name, 10)
		require.NoError(t, err)
		f.CreatedAt = at
		require.NoError(t, repo.Create(ctx, f))
	}

	mustCreateAt(page.ID, "inside.png", base.Add(time.Minute))
	mustCreateAt(page.ID, "late.png", base.Add(48*time.Hour))
	mustCreateAt(bobPage.ID, "other.png", base.Add(time.Minute))

	t.Run("project scope", func(t *testing.T) {
		files, err := repo.ListCreatedByProject(ctx, project.ID, base, base.Add(time.Hour))
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "inside.png", files[0].Name)
	})

	t.Run("user scope", func(t *testing.T) {
		files, err := repo.ListCreatedByUser(ctx, alice.ID, base, base.Add(time.Hour))
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "inside.png", files[0].Name)
	})
}

func TestFileRepository_ListByPage(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewFileRepository(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	project := createTestProject(t, gdb, alice.ID, "Research")
	page := createTestPage(t, gdb, project.ID, "Reading list")

	f, err := content.NewFile(page.ID, "diagram.png", "abc123", 2048)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, f))

	files, err := repo.ListByPage(ctx, page.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "diagram.png", files[0].Name)
	assert.Equal(t, int64(2048), files[0].Size)
}
