package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-lms/internal/config"
	myGRPC "github.com/MKhiriev/go-lms/internal/handler/grpc"

	"google.golang.org/grpc"
)

const healthProbeInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	probeCtx   context.Context
	stopProbes context.CancelFunc
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	probeCtx, stopProbes := context.WithCancel(context.Background())
	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		probeCtx:        probeCtx,
		stopProbes:      stopProbes,
	}, nil
}

func (g *grpcServer) serve() error {
	g.handler.Probe(g.probeCtx)
	go g.handler.Watch(g.probeCtx, healthProbeInterval)

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server: %w", err)
	}
	return nil
}

// shutdown reports NOT_SERVING first, then drains. GracefulStop ignores ctx,
// so a stuck stream is cut with Stop once ctx expires.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.stopProbes()
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}

func (g *grpcServer) address() string {
	return g.gRPCNetListener.Addr().String()
}
