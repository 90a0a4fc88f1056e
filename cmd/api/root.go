package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/care-for-plants/backend/config"
)

// rootCommand builds the CLI. Running it without a subcommand serves the API.
func rootCommand() *cobra.Command {
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:           "care-for-plants",
		Short:         "Care for Plants API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(v.GetBool("debug"))
		},
	}

	if err := setupFlags(rootCmd, v); err != nil {
		// Flag names are static, so a binding failure is a programming error.
		panic(err)
	}

	serveCmd := serveCommand(v)
	rootCmd.AddCommand(serveCmd, migrateCommand(v))
	rootCmd.RunE = serveCmd.RunE

	return rootCmd
}

func setupFlags(rootCmd *cobra.Command, v *viper.Viper) error {
	flags := rootCmd.PersistentFlags()
	flags.Int("port", v.GetInt("SERVER_PORT"), "HTTP port to listen on")
	flags.String("env", v.GetString("ENV"), "Runtime environment (development, test, production)")
	flags.String("db-driver", v.GetString("DATABASE_DRIVER"), "Database driver (postgres, sqlite)")
	flags.BoolP("debug", "d", false, "Enable debug logging")

	bindings := map[string]string{
		"SERVER_PORT":     "port",
		"ENV":             "env",
		"DATABASE_DRIVER": "db-driver",
		"debug":           "debug",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// setupLogger installs the JSON structured logger as the default.
func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
