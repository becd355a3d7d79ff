package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/models"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// identity returns the caller stored by the auth middleware.
func identity(r *http.Request) (models.Identity, error) {
	id, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrNoIdentity
	}
	return id, nil
}

// classScope returns the caller and the class named by the {id} path segment.
func classScope(r *http.Request) (models.Identity, int64, error) {
	caller, err := identity(r)
	if err != nil {
		return models.Identity{}, 0, err
	}
	classID, err := pathID(r, "id")
	if err != nil {
		return models.Identity{}, 0, err
	}
	return caller, classID, nil
}
