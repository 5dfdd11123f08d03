package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"showbook/internal/handlers"
	"showbook/internal/interfaces"
)

func RegisterArtistRoutes(r chi.Router, svc interfaces.ArtistService, guard func(http.Handler) http.Handler) {
	handler := handlers.NewArtistHandler(svc)

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/search", handler.Search)
		r.Post("/search", handler.Search)
		r.With(guard).Post("/", handler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.Get)
			r.Get("/edit", handler.EditForm)
			r.With(guard).Put("/", handler.Update)
			r.With(guard).Delete("/", handler.Delete)
		})
	})
}
