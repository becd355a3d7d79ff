package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-lms/internal/mock"
	"github.com/MKhiriev/go-lms/internal/ratelimit"
	"github.com/MKhiriev/go-lms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func loginFrom(t *testing.T, router http.Handler, ip string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = ip + ":50000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLimit_RejectsOverBudget(t *testing.T) {
	router, _ := newTestRouter(t, Options{LoginLimiter: ratelimit.NewMemoryLimiter(2, time.Minute)})

	// an empty body never reaches the service; the limiter counts it anyway
	for i := 0; i < 2; i++ {
		rec := loginFrom(t, router, "10.0.0.1")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	rec := loginFrom(t, router, "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, rateLimitedMessage, errorBody(t, rec))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	other := loginFrom(t, router, "10.0.0.2")
	assert.Equal(t, http.StatusBadRequest, other.Code, "another client has its own budget")
}

func TestLimit_ScopesAreSeparate(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(1, time.Minute)
	router, _ := newTestRouter(t, Options{LoginLimiter: limiter, ForgotLimiter: limiter})

	require.Equal(t, http.StatusBadRequest, loginFrom(t, router, "10.0.0.3").Code)

	req := httptest.NewRequest(http.MethodPost, "/api/forgot", nil)
	req.RemoteAddr = "10.0.0.3:50000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "login hits do not spend the forgot budget")
}

func TestLimit_FailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mock.NewMockLimiter(ctrl)
	limiter.EXPECT().Allow(gomock.Any(), "login:10.0.0.4").Return(ratelimit.Decision{}, errors.New("redis: connection refused"))

	router, m := newTestRouter(t, Options{LoginLimiter: limiter})
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{Token: "jwt"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"ann@example.com","password":"x"}`))
	req.RemoteAddr = "10.0.0.4:50000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientAddress(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{remote: "192.0.2.1:1234", want: "192.0.2.1"},
		{remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{remote: "192.0.2.9", want: "192.0.2.9"},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote

			assert.Equal(t, tt.want, clientAddress(req))
		})
	}
}

func TestClientAddress_BehindProxy(t *testing.T) {
	router, _ := newTestRouter(t, Options{LoginLimiter: ratelimit.NewMemoryLimiter(1, time.Minute)})

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "10.9.9.9:1"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusBadRequest, send("198.51.100.1"))
	assert.Equal(t, http.StatusBadRequest, send("198.51.100.2"), "forwarded address is the key")
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
}
