package http

import (
	"net/http"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/models"
)

func (h *Handler) listClasses(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	classes, err := h.services.ClassService.ListClasses(r.Context(), caller.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ClassesResponse{Classes: classes}, http.StatusOK)
}

func (h *Handler) createClass(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateClassRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.services.ClassService.CreateClass(r.Context(), caller.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("class_id", class.ClassID).Int64("owner_id", caller.UserID).Msg("class created")
	utils.WriteJSON(w, models.ClassResponse{Class: class}, http.StatusCreated)
}

func (h *Handler) joinClass(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.JoinClassRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.services.ClassService.JoinClass(r.Context(), caller.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.JoinClassResponse{ClassID: class.ClassID}, http.StatusOK)
}

func (h *Handler) inviteToClass(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	classID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.InviteRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ClassService.Invite(r.Context(), caller.UserID, classID, req); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) acceptInvite(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AcceptInviteRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.services.ClassService.AcceptInvite(r.Context(), caller.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ClassResponse{Class: class}, http.StatusOK)
}
