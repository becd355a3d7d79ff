package handler

import (
	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/handler/grpc"
	"github.com/MKhiriev/go-lms/internal/handler/http"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a handler for every configured transport. The gRPC
// handler shares the HTTP options' Pinger for its health status.
func NewHandlers(services *service.Services, options http.Options, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		if options.RequestTimeout == 0 {
			options.RequestTimeout = cfg.RequestTimeout
		}
		handlers.HTTP = http.NewHandler(services, options, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(options.Pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
