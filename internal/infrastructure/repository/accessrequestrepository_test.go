package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/content"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/persistence/models"
)

func appendEntry(t *testing.T, repo audit.Repository, kind audit.ResourceKind, resourceID uint, granted bool, action audit.ActionKind, at time.Time) {
	t.Helper()

	entry, err := audit.NewAccessRequest(nil, resourceID, kind, granted, action)
	require.NoError(t, err)
	entry.AccessTime = at
	require.NoError(t, repo.Create(context.Background(), entry))
}

func TestAccessRequestRepository_ProjectHistory(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAccessRequestRepository(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	project := createTestProject(t, gdb, alice.ID, "Research")
	page := createTestPage(t, gdb, project.ID, "Reading list")

	eq, err := content.NewEquation(page.ID, "Euler", "", "e^{i\\pi}+1=0")
	require.NoError(t, err)
	require.NoError(t, NewEquationRepository(gdb).Create(ctx, eq))

	bob := createTestUser(t, gdb, "bob")
	bobProject := createTestProject(t, gdb, bob.ID, "Private")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	start := base.Add(-time.Hour)
	end := base.Add(time.Hour)

	appendEntry(t, repo, audit.KindEquation, eq.ID, true, audit.ActionUpdate, base.Add(3*time.Minute))
	appendEntry(t, repo, audit.KindProject, project.ID, true, audit.ActionUpdate, base.Add(time.Minute))
	appendEntry(t, repo, audit.KindPage, page.ID, true, audit.ActionCreate, base.Add(2*time.Minute))

	// Noise the feed must exclude: reads, denials, other projects.
	appendEntry(t, repo, audit.KindPage, page.ID, true, audit.ActionGet, base.Add(4*time.Minute))
	appendEntry(t, repo, audit.KindPage, page.ID, false, audit.ActionDelete, base.Add(5*time.Minute))
	appendEntry(t, repo, audit.KindProject, bobProject.ID, true, audit.ActionUpdate, base.Add(6*time.Minute))

	t.Run("returns granted non-GET entries ascending with resolved names", func(t *testing.T) {
		entries, err := repo.ProjectHistory(ctx, project.ID, start, end)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, "Research", entries[0].Name)
		assert.Equal(t, audit.KindProject, entries[0].Kind)
		assert.Equal(t, "Reading list", entries[1].Name)
		assert.Equal(t, audit.ActionCreate, entries[1].Action)
		assert.Equal(t, "Euler", entries[2].Name)
		assert.Equal(t, audit.KindEquation, entries[2].Kind)

		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i].Time.Before(entries[i-1].Time))
		}
	})

	t.Run("window bounds the feed", func(t *testing.T) {
		entries, err := repo.ProjectHistory(ctx, project.ID, base.Add(90*time.Second), end)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Reading list", entries[0].Name)
	})

	t.Run("deleted resources drop out of the feed", func(t *testing.T) {
		require.NoError(t, NewEquationRepository(gdb).Delete(ctx, eq.ID))

		entries, err := repo.ProjectHistory(ctx, project.ID, start, end)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.NotEqual(t, audit.KindEquation, e.Kind)
		}
	})
}

func TestAccessRequestRepository_UserHistory(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAccessRequestRepository(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	first := createTestProject(t, gdb, alice.ID, "First")
	second := createTestProject(t, gdb, alice.ID, "Second")

	bob := createTestUser(t, gdb, "bob")
	bobProject := createTestProject(t, gdb, bob.ID, "Private")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	appendEntry(t, repo, audit.KindProject, first.ID, true, audit.ActionUpdate, base.Add(time.Minute))
	appendEntry(t, repo, audit.KindProject, second.ID, true, audit.ActionCreate, base.Add(2*time.Minute))
	appendEntry(t, repo, audit.KindProject, bobProject.ID, true, audit.ActionUpdate, base.Add(3*time.Minute))

	entries, err := repo.UserHistory(ctx, alice.ID, base.Add(-time.Hour), base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "First", entries[0].Name)
	assert.Equal(t, "Second", entries[1].Name)
}

func TestAccessRequestRepository_LastAction(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAccessRequestRepository(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	project := createTestProject(t, gdb, alice.ID, "Research")
	page := createTestPage(t, gdb, project.ID, "Reading list")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("never-reviewed page yields nil", func(t *testing.T) {
		last, err := repo.LastAction(ctx, audit.KindPage, page.ID, audit.ActionReview)
		require.NoError(t, err)
		assert.Nil(t, last)
	})

	t.Run("returns the most recent granted occurrence", func(t *testing.T) {
		appendEntry(t, repo, audit.KindPage, page.ID, true, audit.ActionReview, base)
		appendEntry(t, repo, audit.KindPage, page.ID, true, audit.ActionReview, base.Add(time.Hour))
		// A denied attempt after the fact must not count.
		appendEntry(t, repo, audit.KindPage, page.ID, false, audit.ActionReview, base.Add(2*time.Hour))

		last, err := repo.LastAction(ctx, audit.KindPage, page.ID, audit.ActionReview)
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.True(t, last.Equal(base.Add(time.Hour)))
	})
}

func TestAccessRequestRepository_Create(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAccessRequestRepository(gdb)
	ctx := context.Background()

	t.Run("persists a null actor", func(t *testing.T) {
		entry, err := audit.NewAccessRequest(nil, 42, audit.KindProject, false, audit.ActionDelete)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, entry))
		assert.NotZero(t, entry.ID)

		var model models.AccessRequestModel
		require.NoError(t, gdb.Where("id = ?", entry.ID).Take(&model).Error)
		assert.Nil(t, model.SessionID)
	})

	t.Run("log accepts entries for absent resources", func(t *testing.T) {
		entry, err := audit.NewAccessRequest(nil, 99999, audit.KindPage, false, audit.ActionGet)
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, entry))
	})
}
