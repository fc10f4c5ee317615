package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/Despensa_Go/internal/bootstrap"
	"github.com/osse101/Despensa_Go/internal/config"
	"github.com/osse101/Despensa_Go/internal/database"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations of the configured store",
		Long: `Apply, roll back or list the embedded schema migrations.

The store is selected the same way the server selects it:
STORAGE_BACKEND, the DB_* variables or SQLITE_PATH, read from the
environment or a .env file.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *database.Migrator) error {
				applied, err := m.Up(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Applied %d migration(s)", applied)))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *database.Migrator) error {
				version, err := m.Down(cmd.Context())
				if err != nil {
					return err
				}
				if version == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Nothing to roll back"))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Rolled back version %d", version)))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *database.Migrator) error {
				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderMigrations(statuses))
				return nil
			}),
		},
	)
	return cmd
}

func withMigrator(run func(*cobra.Command, *database.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		m, db, err := bootstrap.OpenMigrator(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		return run(cmd, m)
	}
}
