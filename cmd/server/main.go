// Package main implements the entry point for the ToToDo API server, a
// small task-list backend with JWT-authenticated task routes.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/parkerross/totodo-api/internal/config"
	"github.com/parkerross/totodo-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run wires configuration, logging, the database, and the HTTP server
// together, and blocks until the server shuts down.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	logStartupConfig(appLogger, cfg)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.startHTTPServer(context.Background(), app.setupRouter())
}

func logStartupConfig(log *slog.Logger, cfg *config.Config) {
	log.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("protect_tasks", cfg.Server.ProtectTasks),
		slog.Bool("metrics_enabled", cfg.Server.MetricsEnabled))

	if os.Getenv("TOTODO_AUTH_JWT_SECRET") == "" {
		log.Warn("Using the built-in development JWT secret; set TOTODO_AUTH_JWT_SECRET in production")
	}
}
