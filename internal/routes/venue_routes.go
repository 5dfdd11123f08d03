package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"showbook/internal/handlers"
	"showbook/internal/interfaces"
)

func RegisterVenueRoutes(r chi.Router, svc interfaces.VenueService, guard func(http.Handler) http.Handler) {
	handler := handlers.NewVenueHandler(svc)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/search", handler.Search)
		r.Post("/search", handler.Search)
		r.With(guard).Post("/", handler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.Get)
			r.Get("/edit", handler.EditForm)
			r.Get("/shows", handler.ListShows)
			r.With(guard).Put("/", handler.Update)
			r.With(guard).Delete("/", handler.Delete)
		})
	})
}
