package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/handler/http"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// http.NewHandler only keeps the services pointer, so nil services are enough
// to exercise construction.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both transports", cfg: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "grpc health only", cfg: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "nothing configured", cfg: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(nil, http.Options{}, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}

	h1, err := NewHandlers(nil, http.Options{}, cfg, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandlers(nil, http.Options{}, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}

func TestNewHandlers_RequestTimeout(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", RequestTimeout: 5 * time.Second}

	h, err := NewHandlers(nil, http.Options{}, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP.Init())
}
