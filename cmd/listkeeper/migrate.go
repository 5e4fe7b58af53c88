package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/listkeeper/backend/internal/infrastructure/config"
	"github.com/listkeeper/backend/internal/infrastructure/storage"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Long: `Migrate connects to the database configured for the server
(DB_* environment variables or the config file) and creates the
todo_lists and todo_items tables if they do not exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := storage.ProvideDB(&cfg.Database)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			defer db.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Schema ready (%s)\n", cfg.Database.Driver)
			return nil
		},
	}
}
