// Package main implements the entry point for the taskboard API server,
// which provides account registration, token-based authentication, and a
// per-user task resource.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/rfelton/taskboard-api/internal/config"
	"github.com/rfelton/taskboard-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"Run a migration command (up, down, status, version, reset, create) and exit")
	migrationName := flag.String("name", "",
		"Name for a new migration (used with -migrate create)")
	flag.Parse()

	if err := run(*migrateCmd, *migrationName); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// run loads configuration, sets up logging, and either executes a migration
// command or starts the HTTP server.
func run(migrateCmd, migrationName string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	if migrateCmd != "" {
		if err := runMigrations(cfg, migrateCmd, migrationName); err != nil {
			return fmt.Errorf("migration %q failed: %w", migrateCmd, err)
		}
		return nil
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	return app.Run(ctx)
}
