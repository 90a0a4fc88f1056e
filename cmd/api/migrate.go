package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/care-for-plants/backend/config"
	"github.com/care-for-plants/backend/internal/infra/db"
)

func migrateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper(v)

			database, err := db.NewConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := database.Migrate(); err != nil {
				return err
			}
			slog.Info("Database migrations completed successfully", "driver", cfg.Database.Driver)
			return nil
		},
	}
}
