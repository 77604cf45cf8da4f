package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/scry-flashgen/internal/api"
	apiMiddleware "github.com/phrazzld/scry-flashgen/internal/api/middleware"
)

// setupRouter registers the API routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	flashcardHandler := api.NewFlashcardHandler(app.service)

	r.Route("/api", func(r chi.Router) {
		r.Post("/flashcards", flashcardHandler.GenerateFlashcards)
		r.Post("/flashcards/export", flashcardHandler.ExportFlashcards)
	})

	r.Get("/health", api.HealthCheck)

	return r
}
