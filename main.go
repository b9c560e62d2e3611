package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/homeglue/spotify-home-search/internal/app/services/search"
	server "github.com/homeglue/spotify-home-search/internal/infra/http"
	searchhandler "github.com/homeglue/spotify-home-search/internal/infra/http/handlers/search"
	"github.com/homeglue/spotify-home-search/internal/infra/registry"
	rediscache "github.com/homeglue/spotify-home-search/internal/infra/repository/cache/redis"
	spotifyrepo "github.com/homeglue/spotify-home-search/internal/infra/repository/spotify"
)

func main() {
	if err := LoadEnv(); err != nil {
		logrus.WithError(err).Fatal("Failed to load environment variables")
	}
	env := GetEnv()

	setupLogger(env)

	ctx := context.Background()

	spanExporter, err := newSpanExporter(ctx, env.OTLPEndpoint)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create span exporter")
	}

	tracerProvider, err := newTracerProvider(spanExporter)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create tracer provider")
	}
	otel.SetTracerProvider(tracerProvider)
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			logrus.WithError(err).Error("Failed to shut down tracer provider")
		}
	}()

	tracer := otel.Tracer("spotify-home-search")

	cache, err := rediscache.FromURL(env.RedisURL, env.CacheTTL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to Redis")
	}

	spotifyClient, err := spotifyrepo.New(ctx, spotifyrepo.Config{
		ClientID:     env.SpotifyClientID,
		ClientSecret: env.SpotifyClientSecret,
		Tracer:       tracer,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create Spotify client")
	}

	entities := registry.New()
	entities.Add(spotifyrepo.NewMediaPlayerEntity(
		env.SpotifyEntityID,
		spotifyrepo.NewCoordinator(spotifyClient),
	))

	service := search.New(
		tracer,
		search.NewResolver(entities),
		cache,
		search.Config{
			CacheTTL:         env.CacheTTL,
			NormalizeQueries: env.NormalizeQueries,
		},
	)

	handler := searchhandler.New(tracer, service)

	srv, err := server.New(server.NewConfig(env.Port, false), handler)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create server")
	}

	go func() {
		logrus.WithField("port", env.Port).Info("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Failed to shut down server gracefully")
	}
}

func setupLogger(env *Env) {
	if env.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		logrus.WithError(err).Warn("Invalid log level, defaulting to info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
