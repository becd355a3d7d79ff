package grpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// startServer serves h over an in-memory listener and returns a health client.
func startServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLogging))
	h.Register(server)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_ServingByDefault(t *testing.T) {
	client := startServer(t, NewHandler(nil, logger.Nop()))

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceName))
}

func TestHealth_FollowsDatabase(t *testing.T) {
	dbErr := errors.New("connection refused")
	var down bool
	h := NewHandler(pingerFunc(func(context.Context) error {
		if down {
			return dbErr
		}
		return nil
	}), logger.Nop())
	client := startServer(t, h)

	down = true
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))

	down = false
	h.Probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceName))
}

func TestHealth_Shutdown(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startServer(t, h)

	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestHealth_UnknownService(t *testing.T) {
	client := startServer(t, NewHandler(nil, logger.Nop()))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "nope"})

	assert.Error(t, err)
}

func TestUnaryLogging_TraceID(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(nil, logger.NewLoggerWithOutput("test", &buf))
	client := startServer(t, h)

	const traceID = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDKey, traceID)
	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), traceID)
	assert.Contains(t, buf.String(), "/grpc.health.v1.Health/Check")
}
