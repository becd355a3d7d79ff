package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/handler"
	"github.com/MKhiriev/go-lms/internal/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds a listener for every configured transport. Failing to bind
// any of them closes the ones already bound.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg)
		if err != nil {
			if servers.httpServer != nil {
				_ = servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) transports() map[string]transport {
	list := make(map[string]transport, 2)
	if s.httpServer != nil {
		list["HTTP"] = s.httpServer
	}
	if s.gRPCServer != nil {
		list["gRPC"] = s.gRPCServer
	}
	return list
}

func (s *server) RunServer(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	// launch all created servers
	for name, t := range s.transports() {
		s.logger.Info().Str("transport", name).Str("address", t.address()).Msg("launching server")
		group.Go(t.serve)
	}

	// wait for a stop signal or a failed transport, then finish the others
	group.Go(func() error {
		<-groupCtx.Done()
		return s.shutdown()
	})

	err := group.Wait()
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	for name, t := range s.transports() {
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", name, err))
		}
		s.logger.Info().Str("transport", name).Msg("server shutdown")
	}
	return errors.Join(errs...)
}
