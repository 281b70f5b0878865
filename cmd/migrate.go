package cmd

import (
	"fmt"

	"github.com/killallgit/podscribe-api/internal/database"
	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the database schema for the Podscribe API.

Runs GORM auto-migration for every model, creating missing tables,
columns and indexes. Existing data is preserved.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Database schema is up to date at %s\n", cfg.Database.Path)
	return nil
}
