// internal/routes/routes.go
package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"showbook/internal/config"
	"showbook/internal/interfaces"
	appmw "showbook/internal/middleware"
	"showbook/internal/services"
)

// Integrations are the optional collaborators wired in by the entrypoint.
// Nil fields disable the feature.
type Integrations struct {
	ArtistCache interfaces.ArtistListCache
	Events      interfaces.EventPublisher
	Images      interfaces.ImageStore
}

func SetupRoutes(db *sql.DB, cfg *config.Config, in Integrations) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.RequestLogger())
	r.Use(middleware.Recoverer)
	r.Use(appmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "showbook booking directory API"})
	})

	// Health check
	r.Get("/health", healthHandler(db))
	r.Handle("/metrics", promhttp.Handler())
	RegisterSwaggerRoutes(r)

	directory := services.NewDirectory(db,
		services.WithArtistCache(in.ArtistCache),
		services.WithEventPublisher(in.Events),
	)
	guard := adminGuard(cfg)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterAuthRoutes(r, cfg)
		RegisterVenueRoutes(r, directory, guard)
		RegisterArtistRoutes(r, directory, guard)
		RegisterShowRoutes(r, directory, guard)
		RegisterImageRoutes(r, in.Images, guard)
	})

	return r
}

// adminGuard protects mutating routes when a signing secret is configured.
func adminGuard(cfg *config.Config) func(http.Handler) http.Handler {
	if !cfg.AuthEnabled() {
		return func(next http.Handler) http.Handler { return next }
	}
	return appmw.JWTAuth(cfg.JWTSecret)
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		dbStatus := map[string]any{"status": "ok"}
		status, code := "ok", http.StatusOK
		if err := db.PingContext(ctx); err != nil {
			dbStatus = map[string]any{"status": "down", "error": err.Error()}
			status, code = "degraded", http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]any{"status": status, "db": dbStatus})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
