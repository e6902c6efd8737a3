package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/rfelton/taskboard-api/internal/config"
)

const migrationsDir = "migrations"

// runMigrations executes a goose migration command against the configured
// database. Supported commands: up, down, status, version, reset, create.
func runMigrations(cfg *config.Config, command, migrationName string) error {
	correlationID := uuid.New().String()
	migrationLogger := slog.Default().With(
		slog.String("correlation_id", correlationID),
		slog.String("component", "migrations"),
		slog.String("command", command),
	)

	if cfg.Database.URL == "" {
		return fmt.Errorf("database URL is empty: check your configuration")
	}

	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			migrationLogger.Error("error closing database connection", "error", cerr)
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	startTime := time.Now()
	migrationLogger.Info("starting migration operation")

	switch command {
	case "up":
		err = goose.Up(db, migrationsDir)
	case "down":
		err = goose.Down(db, migrationsDir)
	case "status":
		err = goose.Status(db, migrationsDir)
	case "version":
		err = goose.Version(db, migrationsDir)
	case "reset":
		err = goose.Reset(db, migrationsDir)
	case "create":
		if migrationName == "" {
			return fmt.Errorf("migration name is required for create (use -name)")
		}
		err = goose.Create(db, migrationsDir, migrationName, "sql")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return err
	}

	migrationLogger.Info("migration operation completed",
		slog.Int64("duration_ms", time.Since(startTime).Milliseconds()))
	return nil
}

// slogGooseLogger adapts slog to the goose.Logger interface.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}
