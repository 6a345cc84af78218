package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/taskwell/taskwell-api/internal/api"
	apimiddleware "github.com/taskwell/taskwell-api/internal/api/middleware"
	"github.com/taskwell/taskwell-api/internal/api/shared"
)

// routes builds the application router with all middleware and endpoints.
func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.hasher, app.hasher)
	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	r.Route("/api", func(r chi.Router) {
		// Public credential endpoints, rate limited per client IP.
		r.Group(func(r chi.Router) {
			r.Use(apimiddleware.RateLimit(
				app.config.Server.AuthRateLimit,
				app.config.Server.AuthRateBurst,
			))
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})

		// Everything else requires a valid session token.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)
				r.Get("/{id}", taskHandler.Get)
				r.Put("/{id}", taskHandler.Update)
				r.Delete("/{id}", taskHandler.Delete)
			})
		})

		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			shared.RespondWithJSON(w, req, http.StatusOK, api.MessageResponse{
				Message: "Server is running",
			})
		})
	})

	return r
}
