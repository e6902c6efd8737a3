package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/rfelton/taskboard-api/internal/config"
	"github.com/rfelton/taskboard-api/internal/platform/postgres"
	"github.com/rfelton/taskboard-api/internal/service"
	"github.com/rfelton/taskboard-api/internal/service/auth"
	"github.com/rfelton/taskboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	taskService      service.TaskService
}

// newApplication creates an application instance with all dependencies
// initialized. The configuration, logger, and database connection must be
// established before calling.
func newApplication(cfg *config.Config, appLogger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: appLogger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	appLogger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, appLogger)
	app.taskStore = postgres.NewPostgresTaskStore(db, appLogger)

	app.userService = service.NewUserService(app.userStore, db, appLogger)
	app.taskService = service.NewTaskService(app.taskStore, appLogger)

	appLogger.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
