// Package http provides the inbound HTTP adapter: routing and server
// lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ybrd/todo/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally, in the order given, via the chi mux so the
// route pattern is visible to instrumentation.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside the /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Todo CRUD. Updates are wholesale replacements, hence PUT.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/todos", todoHandler.ListTodos)
		r.Post("/todos", todoHandler.CreateTodo)
		r.Get("/todos/{id}", todoHandler.GetTodo)
		r.Put("/todos/{id}", todoHandler.UpdateTodo)
		r.Delete("/todos/{id}", todoHandler.DeleteTodo)
	})

	return r
}
