package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/access"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/content"
)

func TestOwnershipResolver(t *testing.T) {
	gdb := setupTestDB(t)
	resolver := NewOwnershipResolver(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	project := createTestProject(t, gdb, alice.ID, "Research")
	page := createTestPage(t, gdb, project.ID, "Reading list")

	snippet, err := content.NewSnippet(page.ID, "sieve", "", "go", "func sieve() {}")
	require.NoError(t, err)
	require.NoError(t, NewSnippetRepository(gdb).Create(ctx, snippet))

	t.Run("project resolves to its owner", func(t *testing.T) {
		owner, err := resolver.ProjectOwner(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, owner)
	})

	t.Run("page resolves through its project", func(t *testing.T) {
		owner, err := resolver.PageOwner(ctx, page.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, owner)
	})

	t.Run("page-scoped resource resolves through page and project", func(t *testing.T) {
		owner, err := resolver.ResourceOwner(ctx, audit.KindSnippet, snippet.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, owner)
	})

	t.Run("absent ids fail closed with ErrNotOwned", func(t *testing.T) {
		_, err := resolver.ProjectOwner(ctx, 99999)
		assert.ErrorIs(t, err, access.ErrNotOwned)

		_, err = resolver.PageOwner(ctx, 99999)
		assert.ErrorIs(t, err, access.ErrNotOwned)

		_, err = resolver.ResourceOwner(ctx, audit.KindCanvas, 99999)
		assert.ErrorIs(t, err, access.ErrNotOwned)
	})

	t.Run("unknown kind fails closed", func(t *testing.T) {
		_, err := resolver.ResourceOwner(ctx, audit.ResourceKind("widget"), snippet.ID)
		assert.ErrorIs(t, err, access.ErrNotOwned)
	})
}
