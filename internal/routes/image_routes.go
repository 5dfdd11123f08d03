package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"showbook/internal/handlers"
	"showbook/internal/interfaces"
)

// RegisterImageRoutes mounts uploads; a nil store makes them answer 503.
func RegisterImageRoutes(router chi.Router, store interfaces.ImageStore, guard func(http.Handler) http.Handler) {
	imageHandler := handlers.NewImageHandler(store)

	router.With(guard).Post("/images", imageHandler.Upload)
}
