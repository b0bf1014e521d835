package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/content"
)

func TestEventRepository_ListByUserBetween(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewEventRepository(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	first := createTestProject(t, gdb, alice.ID, "First")
	second := createTestProject(t, gdb, alice.ID, "Second")

	bob := createTestUser(t, gdb, "bob")
	bobProject := createTestProject(t, gdb, bob.ID, "Private")

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mustCreate := func(projectID uint, name string, start, end time.Time) {
		ev, err := content.NewEvent(projectID, name, "", start, end)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, ev))
	}

	mustCreate(first.ID, "inside", base.Add(time.Hour), base.Add(2*time.Hour))
	mustCreate(second.ID, "spans start", base.Add(-time.Hour), base.Add(30*time.Minute))
	mustCreate(first.ID, "before window", base.Add(-3*time.Hour), base.Add(-2*time.Hour))
	mustCreate(first.ID, "after window", base.Add(10*time.Hour), base.Add(11*time.Hour))
	mustCreate(bobProject.ID, "not mine", base.Add(time.Hour), base.Add(2*time.Hour))

	t.Run("returns overlapping events across the user's projects", func(t *testing.T) {
		events, err := repo.ListByUserBetween(ctx, alice.ID, base, base.Add(3*time.Hour))
		require.NoError(t, err)
		require.Len(t, events, 2)

		names := []string{events[0].Name, events[1].Name}
		assert.Contains(t, names, "inside")
		assert.Contains(t, names, "spans start")
	})

	t.Run("event enclosing the whole window still matches", func(t *testing.T) {
		mustCreate(first.ID, "encloses", base.Add(-24*time.Hour), base.Add(24*time.Hour))

		events, err := repo.ListByUserBetween(ctx, alice.ID, base, base.Add(time.Hour))
		require.NoError(t, err)

		var found bool
		for _, ev := range events {
			if ev.Name == "encloses" {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestEventRepository_ListByProject(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewEventRepository(gdb)
	ctx := context.Background()

	alice := createTestUser(t, gdb, "alice")
	project := createTestProject(t, gdb, alice.ID, "Research")

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ev, err := content.NewEvent(project.ID, "standup", "daily", base, base.Add(15*time.Minute))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, ev))

	events, err := repo.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "standup", events[0].Name)
	assert.True(t, events[0].StartTime.Equal(base))
}
