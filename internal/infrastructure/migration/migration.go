// Package migration manages the database schema. Development environments
// migrate from the model structs; everything else runs the versioned SQL
// scripts embedded in the binary, so deploys never depend on files on disk.
package migration

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

//go:embed scripts/*.sql
var embeddedScripts embed.FS

type Manager struct {
	environment string
	logger      logger.Interface
}

func NewManager(environment string) *Manager {
	return &Manager{
		environment: environment,
		logger:      logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate brings the schema up to date using the strategy for the manager's
// environment.
func (m *Manager) Migrate(db *gorm.DB) error {
	if strings.EqualFold(m.environment, "development") || strings.EqualFold(m.environment, "debug") {
		m.logger.Infow("migrating schema from models", "strategy", "auto_migrate")
		if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto migration failed: %w", err)
		}
		return nil
	}

	m.logger.Infow("migrating schema from scripts", "strategy", "goose")
	return m.Up(db)
}

// Up applies all pending SQL migrations.
func (m *Manager) Up(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embeddedScripts)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	m.logger.Infow("migrations applied")
	return nil
}

// Down rolls back the most recent migration.
func (m *Manager) Down(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embeddedScripts)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Down(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	m.logger.Infow("migration rolled back")
	return nil
}

// Status prints the applied/pending state of every migration.
func (m *Manager) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embeddedScripts)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Status(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to report migration status: %w", err)
	}
	return nil
}
