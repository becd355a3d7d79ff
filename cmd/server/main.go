package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/federation"
	"github.com/MKhiriev/go-lms/internal/handler"
	"github.com/MKhiriev/go-lms/internal/handler/http"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/mailer"
	"github.com/MKhiriev/go-lms/internal/objectstore"
	"github.com/MKhiriev/go-lms/internal/ratelimit"
	"github.com/MKhiriev/go-lms/internal/server"
	"github.com/MKhiriev/go-lms/internal/service"
	"github.com/MKhiriev/go-lms/internal/store"
	"github.com/MKhiriev/go-lms/internal/workers"
	"github.com/MKhiriev/go-lms/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("lms-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}
	if cfg.App.LogLevel != "" {
		if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
			log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
		}
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, dependencies(ctx, cfg, log), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiters := ratelimit.NewLimiters(ctx, cfg.RateLimit, log)
	defer limiters.Close()

	handlers, err := handler.NewHandlers(services, http.Options{
		AllowedOrigins: []string{cfg.App.AppBaseURL},
		LoginLimiter:   limiters.Login,
		ForgotLimiter:  limiters.Forgot,
		Pinger:         storages,
	}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(storages, cfg.Workers, log)
	backgroundWorkers.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	stop()
	backgroundWorkers.Wait()
}

// dependencies builds the optional collaborators of the services. Missing
// configuration disables the feature instead of failing startup.
func dependencies(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) service.Dependencies {
	deps := service.Dependencies{
		Mailer: mailer.NewMailer(*cfg, log),
	}

	if cfg.Federation.GoogleClientID != "" {
		deps.Verifier = federation.NewGoogleVerifier(cfg.Federation.GoogleClientID)
	} else {
		log.Warn().Msg("google client id is not configured, external login is disabled")
	}

	if cfg.Storage.Objects.Bucket != "" {
		objects, err := objectstore.NewS3Store(ctx, cfg.Storage.Objects, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating object store")
		}
		deps.Objects = objects
	} else {
		log.Warn().Msg("object storage is not configured, avatar uploads are disabled")
	}

	return deps
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
