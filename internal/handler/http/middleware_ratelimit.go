package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/ratelimit"
)

const rateLimitedMessage = "Too many requests, please try again later"

// limit counts every request against limiter under scope plus the client
// address. It runs before the handler, so rejected requests never reach the
// store. A failing limiter backend lets the request through.
func (h *Handler) limit(limiter ratelimit.Limiter, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := limiter.Allow(r.Context(), scope+":"+clientAddress(r))
			if err != nil {
				logger.FromRequest(r).Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			if !decision.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(decision.ResetAfter.Seconds()))))
				logger.FromRequest(r).Info().Str("scope", scope).Msg("rate limited")
				writeErrorMessage(w, http.StatusTooManyRequests, rateLimitedMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientAddress is the request's remote IP. With middleware.RealIP in front
// it honours X-Forwarded-For and X-Real-IP.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
