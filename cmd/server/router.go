package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/parkerross/totodo-api/internal/api"
	apimiddleware "github.com/parkerross/totodo-api/internal/api/middleware"
)

// setupRouter configures the application router. The task routes are wrapped
// in authentication only when protect_tasks is set, and the metrics endpoint
// exists only when metrics_enabled is set; the two deployment revisions are
// the same binary with different flags.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)
	if app.metrics != nil {
		r.Use(app.metrics.Collect)
	}

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", authHandler.Register)
		r.Post("/users/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			if app.config.Server.ProtectTasks {
				r.Use(authMiddleware.Authenticate)
			}
			r.Post("/tasks", taskHandler.Create)
			r.Get("/tasks", taskHandler.List)
			r.Patch("/tasks/{uuid}", taskHandler.Update)
			r.Delete("/tasks/{uuid}", taskHandler.Delete)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte("Welcome to the ToToDo backend\n")); err != nil {
			app.logger.Error("Failed to write banner response", "error", err)
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.metrics != nil {
		r.Get("/metrics", app.metrics.Handler())
	}

	return r
}
