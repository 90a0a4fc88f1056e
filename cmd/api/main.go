// Package main is the entry point for the Care for Plants API server.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	if err := rootCommand().Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
