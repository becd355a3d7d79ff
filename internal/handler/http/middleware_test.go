package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// ─────────────────────────────────────────────
// logging / trace id
// ─────────────────────────────────────────────

func TestLogging_OmitsQueryString(t *testing.T) {
	var buf bytes.Buffer
	services, m := newServiceMocks(t)
	m.auth.EXPECT().VerifyEmail(gomock.Any(), "secret-token-value").Return(nil)
	router := NewHandler(services, Options{}, logger.NewLoggerWithOutput("test", &buf)).Init()

	rec := serve(t, router, http.MethodGet, "/api/verify?token=secret-token-value", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"uri":"/api/verify"`)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.NotContains(t, buf.String(), "secret-token-value")
}

func TestTraceID(t *testing.T) {
	t.Run("uuid is echoed", func(t *testing.T) {
		router, _ := newTestRouter(t, Options{})
		id := uuid.NewString()

		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set(traceIDHeader, id)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, id, rec.Header().Get(traceIDHeader))
	})

	t.Run("anything else is replaced", func(t *testing.T) {
		router, _ := newTestRouter(t, Options{})

		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set(traceIDHeader, `"}{injected`)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		got := rec.Header().Get(traceIDHeader)
		assert.NotEqual(t, `"}{injected`, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})
}

// ─────────────────────────────────────────────
// response writer
// ─────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		_, _ = w.Write([]byte("hello"))

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 5, w.size)
	})

	t.Run("first status wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, w.status)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unwrap", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		assert.Same(t, rec, w.Unwrap())
	})
}

// ─────────────────────────────────────────────
// routing
// ─────────────────────────────────────────────

func TestUnknownRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/nothing"},
		{name: "wrong method", method: http.MethodDelete, path: "/api/login"},
		{name: "wrong method on protected route", method: http.MethodDelete, path: "/api/users/me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, Options{})

			rec := serve(t, router, tt.method, tt.path, "", "")

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, notFoundMessage, errorBody(t, rec))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	router, _ := newTestRouter(t, Options{AllowedOrigins: []string{"https://lms.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "https://lms.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://lms.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

// ─────────────────────────────────────────────
// metrics
// ─────────────────────────────────────────────

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	router, m := newTestRouter(t, Options{})
	m.users.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(models.PublicUser{}, nil).Times(2)
	counter := httpRequests.WithLabelValues("/api/users/{id}", http.MethodGet, "200")
	before := testutil.ToFloat64(counter)

	serve(t, router, http.MethodGet, "/api/users/1", "", goodToken)
	serve(t, router, http.MethodGet, "/api/users/2", "", goodToken)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestMetrics_Endpoint(t *testing.T) {
	router, _ := newTestRouter(t, Options{})
	serve(t, router, http.MethodGet, "/api/ping", "", "")

	rec := serve(t, router, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lms_http_requests_total")
}

// ─────────────────────────────────────────────
// ping / version
// ─────────────────────────────────────────────

func TestPing(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		wantStatus int
		wantOK     bool
	}{
		{name: "no pinger", wantStatus: http.StatusOK, wantOK: true},
		{name: "database up", pinger: pingerFunc(func(context.Context) error { return nil }), wantStatus: http.StatusOK, wantOK: true},
		{name: "database down", pinger: pingerFunc(func(context.Context) error { return errors.New("down") }), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, Options{Pinger: tt.pinger})

			rec := serve(t, router, http.MethodGet, "/api/ping", "", "")

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOK, decodeBody[models.PingResponse](t, rec).OK)
		})
	}
}

func TestVersion(t *testing.T) {
	router, m := newTestRouter(t, Options{})
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.4.0")

	rec := serve(t, router, http.MethodGet, "/api/version/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "v1.4.0", rec.Body.String())
}
