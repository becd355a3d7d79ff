package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/handler"
	myGRPC "github.com/MKhiriev/go-lms/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-lms/internal/handler/http"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func testHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(nil, myHTTP.Options{}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NothingConfigured(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	_, err = NewServer(testHandlers(t, cfg), cfg, logger.Nop())

	assert.Error(t, err)
}

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	s, err := NewServer(testHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)
	srv := s.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	client := resty.New().SetBaseURL("http://" + srv.httpServer.address()).SetTimeout(time.Second)
	require.Eventually(t, func() bool {
		resp, err := client.R().Get("/api/ping")
		return err == nil && resp.StatusCode() == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	conn, err := grpc.NewClient(srv.gRPCServer.address(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	health, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
