package http

import (
	"net/http"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// ping answers {ok:true} while the database is reachable.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if h.options.Pinger != nil {
		if err := h.options.Pinger.Ping(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Msg("database ping failed")
			utils.WriteJSON(w, models.PingResponse{OK: false}, http.StatusServiceUnavailable)
			return
		}
	}

	utils.WriteJSON(w, models.PingResponse{OK: true}, http.StatusOK)
}
