package main

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete stored documents older than a cutoff",
	Long:  "Removes documents saved by the server from the PostgreSQL store. Requires DATABASE_URL or database_url in the config file.",
	RunE:  runPrune,
}

var pruneOlderThan time.Duration

func init() {
	pruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 30*24*time.Hour, "Delete documents created before now minus this duration")
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if pruneOlderThan <= 0 {
		return fmt.Errorf("--older-than must be positive")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	cutoff := time.Now().Add(-pruneOlderThan)
	n, err := database.DeleteDocumentsBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	newLogger(cmd, cfg).Info("pruned documents", "deleted", n, "before", cutoff.Format(time.RFC3339))
	return nil
}
