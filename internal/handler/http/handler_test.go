package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	services, _ := newServiceMocks(t)
	opts := Options{AllowedOrigins: []string{"https://lms.example.com"}, RequestTimeout: time.Second}

	h := NewHandler(services, opts, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, opts.AllowedOrigins, h.options.AllowedOrigins)
	assert.NotNil(t, h.Init())
}
