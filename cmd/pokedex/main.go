package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/ericlantz/pokedex-api/pkg/api"
	"github.com/ericlantz/pokedex-api/pkg/config"
	"github.com/ericlantz/pokedex-api/pkg/observability"
	"github.com/ericlantz/pokedex-api/pkg/storage/postgres"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel, os.Stdout)

	store, err := postgres.NewStore(cfg.Storage)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize postgres storage")
		os.Exit(1)
	}
	logger.Info("PostgreSQL storage initialized")

	// The image store is optional: without a bucket the API still serves
	// everything except multipart image uploads.
	var images api.ImageStore
	if cfg.Storage.S3Bucket != "" {
		s3Store, err := postgres.NewS3ImageStore(cfg.Storage)
		if err != nil {
			logger.WithError(err).Error("Failed to initialize S3 image store")
			os.Exit(1)
		}
		images = s3Store
		logger.WithField("bucket", cfg.Storage.S3Bucket).Info("S3 image store initialized")
	} else {
		logger.Warn("No S3 bucket configured, image uploads disabled")
	}

	var metrics *observability.Metrics
	if cfg.Observability.MetricsEnabled {
		metrics = observability.NewMetrics()
		metrics.RegisterDBStats(store.DB())
	}

	server := api.NewServer(store, images, logger, api.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		Metrics:        metrics,
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.WithField("addr", addr).Info("Starting Pokedex API server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("HTTP server failed")
			os.Exit(1)
		}
	}()

	shutdown := observability.NewShutdownManager(logger, httpServer, cfg.Server.ShutdownTimeout)
	shutdown.RegisterShutdownFunc(func(ctx context.Context) error {
		return store.Close()
	})

	if err := shutdown.WaitForShutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
}
