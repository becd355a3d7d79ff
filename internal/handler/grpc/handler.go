package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lms/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported for the LMS API. The empty
// name reports the whole server.
const ServiceName = "lms.v1.API"

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It exposes the standard health service, whose status follows the database
// reachability, and server reflection for tooling such as grpcurl.
type Handler struct {
	pinger Pinger
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. A nil pinger keeps the status at
// SERVING.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		pinger: pinger,
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register installs the health and reflection services on server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// Probe pings the database once and publishes the result as the health
// status.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.pinger != nil {
		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Warn().Err(err).Str("func", "*Handler.Probe").Msg("database ping failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	h.setStatus(status)
	return status
}

// Watch probes every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

// Shutdown reports NOT_SERVING for every service so that clients stop
// routing to this instance while it drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
