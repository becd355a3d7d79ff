package http

import (
	"net/http"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/rs/zerolog"
)

const (
	missingTokenMessage = "Token not provided"
	forbiddenMessage    = "Invalid or expired token"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// A request without an "Authorization" header is rejected with 401. Any
// other failure (wrong scheme, bad signature, expired token) is rejected
// with 403 and a single generic message, so the response does not tell the
// caller which check failed. On success the verified [models.Identity] is
// stored in the request context; no database lookup happens here.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeErrorMessage(w, http.StatusUnauthorized, missingTokenMessage)
			return
		}

		raw, err := utils.BearerFromHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeErrorMessage(w, http.StatusForbidden, forbiddenMessage)
			return
		}

		ctx := r.Context()
		caller, err := h.services.TokenService.VerifyBearer(ctx, raw)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token rejected")
			writeErrorMessage(w, http.StatusForbidden, forbiddenMessage)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", caller.UserID)
		})
		ctx = l.WithContext(utils.WithIdentity(ctx, caller))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
