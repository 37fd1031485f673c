package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/qna-api/internal/api"
	apiMiddleware "github.com/phrazzld/qna-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace) // Add trace IDs for improved error handling

	userHandler := api.NewUserHandler(app.userService, app.logger)
	questionHandler := api.NewQuestionHandler(app.questionService, app.replyStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
		})

		r.Route("/questions", func(r chi.Router) {
			r.Post("/", questionHandler.Create)
			r.Get("/", questionHandler.List)
			r.Get("/{id}", questionHandler.Get)
			r.Put("/{id}", questionHandler.Update)
			r.Delete("/{id}", questionHandler.Delete)

			r.Post("/{id}/replies", questionHandler.CreateReply)
			r.Get("/{id}/replies", questionHandler.ListReplies)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
