package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/user"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/workspace"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/migration"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))
	return gdb
}

func createTestUser(t *testing.T, gdb *gorm.DB, name string) *user.User {
	t.Helper()

	u := &user.User{Name: name, PasswordHash: "x", Preferences: "{}"}
	repo := NewUserRepository(gdb)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func createTestProject(t *testing.T, gdb *gorm.DB, userID uint, name string) *workspace.Project {
	t.Helper()

	p, err := workspace.NewProject(userID, name, "")
	require.NoError(t, err)
	require.NoError(t, NewProjectRepository(gdb).Create(context.Background(), p))
	return p
}

func createTestPage(t *testing.T, gdb *gorm.DB, projectID uint, name string) *workspace.Page {
	t.Helper()

	pg, err := workspace.NewPage(projectID, name, "")
	require.NoError(t, err)
	require.NoError(t, NewPageRepository(gdb).Create(context.Background(), pg))
	return pg
}
