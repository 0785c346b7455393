package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/akeren/saascribe/config"
	"github.com/akeren/saascribe/internal/log"
	schema "github.com/akeren/saascribe/migrations"
	"github.com/akeren/saascribe/pkg/migrations"
	"github.com/akeren/saascribe/pkg/utils"
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger) // Load envs early for CLI consistency

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "migrate":
		if err := migrate(logger); err != nil {
			logger.Error("Database migration failed", "error", err.Error())
			os.Exit(1)
		}
		logger.Info("Database migrations completed")
		return

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func migrate(logger *log.Logger) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if !settings.Store.UsesSQL() {
		return fmt.Errorf("WAITLIST_STORE=%s has no SQL schema to migrate", settings.Store.Backend)
	}

	db, dialect, err := config.OpenStoreDatabase(logger, &settings.Store)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get SQL DB instance: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close SQL DB after migration", "error", err.Error())
		}
	}()

	// MIGRATIONS_DIR swaps the embedded schema for one on disk.
	var source fs.FS = schema.FS
	if dir := utils.GetEnvTrimmed("MIGRATIONS_DIR"); dir != "" {
		source = os.DirFS(dir)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	return migrations.Up(ctx, sqlDB, migrations.Config{FS: source, Dialect: dialect, Logger: logger})
}

func printUsage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate  Apply the users table migrations to the SQL waitlist store and exit")
}
