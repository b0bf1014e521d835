package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appaudit "github.com/Maple-Lazuli/one-place-v3/internal/application/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/content"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/workspace"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/migration"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/repository"
)

type historyFixture struct {
	requests audit.Repository
	files    content.FileRepository
	history  *appaudit.History
	review   *appaudit.ReviewStatus

	userID  uint
	project *workspace.Project
	page    *workspace.Page
}

func setupHistory(t *testing.T) *historyFixture {
	t.Helper()
	ctx := context.Background()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))

	users := repository.NewUserRepository(gdb)
	alice := &user.User{Name: "alice", PasswordHash: "h", Preferences: "{}"}
	require.NoError(t, users.Create(ctx, alice))

	project, err := workspace.NewProject(alice.ID, "Research", "")
	require.NoError(t, err)
	require.NoError(t, repository.NewProjectRepository(gdb).Create(ctx, project))

	page, err := workspace.NewPage(project.ID, "Reading list", "")
	require.NoError(t, err)
	require.NoError(t, repository.NewPageRepository(gdb).Create(ctx, page))

	requests := repository.NewAccessRequestRepository(gdb)
	files := repository.NewFileRepository(gdb)

	return &historyFixture{
		requests: requests,
		files:    files,
		history:  appaudit.NewHistory(requests, files),
		review:   appaudit.NewReviewStatus(requests),
		userID:   alice.ID,
		project:  project,
		page:     page,
	}
}

func (f *historyFixture) record(t *testing.T, kind audit.ResourceKind, resourceID uint, granted bool, action audit.ActionKind, at time.Time) {
	t.Helper()
	entry, err := audit.NewAccessRequest(nil, resourceID, kind, granted, action)
	require.NoError(t, err)
	entry.AccessTime = at
	require.NoError(t, f.requests.Create(context.Background(), entry))
}

func TestHistory_ForProject(t *testing.T) {
	f := setupHistory(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.record(t, audit.KindPage, f.page.ID, true, audit.ActionUpdate, base.Add(time.Minute))
	f.record(t, audit.KindPage, f.page.ID, true, audit.ActionGet, base.Add(2*time.Minute))
	f.record(t, audit.KindProject, f.project.ID, true, audit.ActionUpdate, base.Add(5*time.Minute))

	upload, err := content.NewFile(f.page.ID, "scan.pdf", "abc123", 64)
	require.NoError(t, err)
	upload.CreatedAt = base.Add(3 * time.Minute)
	require.NoError(t, f.files.Create(ctx, upload))

	entries, err := f.history.ForProject(ctx, f.project.ID, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 3, "GET entries are display noise and stay out")

	assert.Equal(t, "Reading list", entries[0].Name)
	assert.Equal(t, audit.ActionUpdate, entries[0].Action)

	assert.Equal(t, "scan.pdf", entries[1].Name)
	assert.Equal(t, audit.ActionUpload, entries[1].Action)

	assert.Equal(t, "Research", entries[2].Name)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Time.Before(entries[i-1].Time), "feed must ascend")
	}
}

func TestHistory_ForUser(t *testing.T) {
	f := setupHistory(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.record(t, audit.KindProject, f.project.ID, true, audit.ActionCreate, base.Add(time.Minute))

	upload, err := content.NewFile(f.page.ID, "notes.txt", "def456", 12)
	require.NoError(t, err)
	upload.CreatedAt = base.Add(2 * time.Minute)
	require.NoError(t, f.files.Create(ctx, upload))

	entries, err := f.history.ForUser(ctx, f.userID, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Research", entries[0].Name)
	assert.Equal(t, "notes.txt", entries[1].Name)
}

func TestReviewStatus(t *testing.T) {
	f := setupHistory(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("never reviewed or edited", func(t *testing.T) {
		delta, err := f.review.LastReviewDelta(ctx, f.page.ID, base)
		require.NoError(t, err)
		assert.Nil(t, delta)

		edited, err := f.review.LastEditTimestamp(ctx, f.page.ID)
		require.NoError(t, err)
		assert.Nil(t, edited)
	})

	t.Run("delta measured from the latest review", func(t *testing.T) {
		f.record(t, audit.KindPage, f.page.ID, true, audit.ActionReview, base.Add(-2*time.Hour))
		f.record(t, audit.KindPage, f.page.ID, true, audit.ActionReview, base.Add(-30*time.Minute))

		delta, err := f.review.LastReviewDelta(ctx, f.page.ID, base)
		require.NoError(t, err)
		require.NotNil(t, delta)
		assert.Equal(t, 30*time.Minute, *delta)
	})

	t.Run("last edit timestamp", func(t *testing.T) {
		f.record(t, audit.KindPage, f.page.ID, true, audit.ActionUpdate, base.Add(-10*time.Minute))

		edited, err := f.review.LastEditTimestamp(ctx, f.page.ID)
		require.NoError(t, err)
		require.NotNil(t, edited)
		assert.True(t, edited.Equal(base.Add(-10*time.Minute)))
	})
}
