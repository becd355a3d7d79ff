package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/ratelimit"
	"github.com/MKhiriev/go-lms/internal/service"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configure the cross-cutting parts of the router. Nil limiters
// disable the corresponding limit.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration

	LoginLimiter  ratelimit.Limiter
	ForgotLimiter ratelimit.Limiter

	Pinger Pinger
}

type Handler struct {
	services *service.Services
	options  Options

	logger *logger.Logger
}

func NewHandler(services *service.Services, options Options, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		options:  options,
		logger:   logger,
	}
}
