package main

import (
	"fmt"
	"os"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

func runMigrate(c *cobra.Command, _ []string) error {
	db, _, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if err := postgres.Migrate(db.WithContext(c.Context())); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintln(c.OutOrStdout(), "Schema ready.")
	return nil
}

func openDatabase() (*gorm.DB, cmd.Config, error) {
	config, err := cmd.LoadConfig(rootFlags.envFile)
	if err != nil {
		return nil, cmd.Config{}, err
	}
	db, err := cmd.OpenDatabase(config)
	if err != nil {
		return nil, cmd.Config{}, fmt.Errorf("connect to database: %w", err)
	}
	return db, config, nil
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close database:", err)
		}
	}
}
