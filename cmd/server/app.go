package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/parkerross/totodo-api/internal/api/middleware"
	"github.com/parkerross/totodo-api/internal/config"
	"github.com/parkerross/totodo-api/internal/platform/postgres"
	"github.com/parkerross/totodo-api/internal/service/auth"
	"github.com/parkerross/totodo-api/internal/store"
)

// application holds the shared application dependencies so that wiring and
// cleanup happen in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	metrics *middleware.Metrics
}

// newApplication creates an application with all dependencies initialized.
// The configuration, logger, and database connection must already be
// established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.passwordHasher = hasher
	app.passwordVerifier = hasher

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	if cfg.Server.MetricsEnabled {
		app.metrics = middleware.NewMetrics()
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
