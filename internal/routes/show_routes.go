package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"showbook/internal/handlers"
	"showbook/internal/interfaces"
)

func RegisterShowRoutes(r chi.Router, svc interfaces.ShowService, guard func(http.Handler) http.Handler) {
	handler := handlers.NewShowHandler(svc)

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", handler.List)
		r.With(guard).Post("/", handler.Create)
	})
	r.Get("/genres", handler.ListGenres)
}
