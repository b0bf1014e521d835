// Package migrate implements the `migrate` subcommand for applying,
// rolling back, and inspecting schema migrations.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/config"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/database"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/migration"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func(m *migration.Manager) error {
					return m.Up(database.Get())
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func(m *migration.Manager) error {
					return m.Down(database.Get())
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the state of every migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func(m *migration.Manager) error {
					return m.Status(database.Get())
				})
			},
		},
	)

	return cmd
}

func withDatabase(fn func(m *migration.Manager) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return fn(migration.NewManager(env))
}
