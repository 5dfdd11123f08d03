package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"showbook/internal/cache"
	"showbook/internal/config"
	"showbook/internal/db"
	"showbook/internal/db/migrations"
	"showbook/internal/logging"
	"showbook/internal/routes"
	"showbook/internal/services"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// openDatabase loads configuration, makes sure the database exists and
// brings the schema up to date.
func openDatabase(ctx context.Context) (*config.Config, *db.Database, error) {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.IsProduction())

	if err := db.EnsureDatabase(ctx, cfg.DatabaseURL); err != nil {
		return nil, nil, fmt.Errorf("ensure database: %w", err)
	}

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := migrations.RunMigrations(ctx, database.DB); err != nil {
		_ = database.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	return cfg, database, nil
}

func runServe(ctx context.Context) error {
	cfg, database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	var in routes.Integrations

	if client := config.NewRedisClient(cfg); client != nil {
		defer client.Close()
		in.ArtistCache = cache.NewArtistCache(client, cfg.ArtistCacheTTL)
		logrus.WithField("addr", cfg.RedisAddr).Info("artist list cache enabled")
	}

	if cfg.RabbitMQURL != "" {
		publisher := services.NewRabbitMQPublisher(cfg.RabbitMQURL)
		defer publisher.Close()
		in.Events = publisher
		logrus.Info("domain events go to exchange " + services.EventsExchange)
	}

	s3Config, err := config.NewS3Config(ctx)
	if err != nil {
		logrus.WithError(err).Warn("s3 configuration failed, image uploads disabled")
	} else if s3Config.Enabled() {
		in.Images = services.NewS3ImageStore(s3Config)
		logrus.WithField("bucket", s3Config.Bucket).Info("image uploads enabled")
	}

	if !cfg.AuthEnabled() {
		logrus.Warn("JWT_SECRET is not set, mutating routes are unauthenticated")
	}

	router := routes.SetupRoutes(database.DB, cfg, in)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("start server: %w", err)
	case <-quit:
	}
	logrus.Info("Shutting down server...")

	// Give server 5 seconds to finish current requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logrus.Info("Server exiting")
	return nil
}
