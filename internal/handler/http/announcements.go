package http

import (
	"net/http"

	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/models"
)

func (h *Handler) getClass(w http.ResponseWriter, r *http.Request) {
	caller, classID, err := classScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.services.CourseworkService.GetClass(r.Context(), caller.UserID, classID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ClassDetailResponse{Class: class}, http.StatusOK)
}

func (h *Handler) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	caller, classID, err := classScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	announcements, err := h.services.CourseworkService.ListAnnouncements(r.Context(), caller.UserID, classID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AnnouncementsResponse{Announcements: announcements}, http.StatusOK)
}

func (h *Handler) createAnnouncement(w http.ResponseWriter, r *http.Request) {
	caller, classID, err := classScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AnnouncementRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	announcement, err := h.services.CourseworkService.CreateAnnouncement(r.Context(), caller.UserID, classID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AnnouncementResponse{Announcement: announcement}, http.StatusCreated)
}

func (h *Handler) updateAnnouncement(w http.ResponseWriter, r *http.Request) {
	caller, classID, err := classScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	announcementID, err := pathID(r, "announcementID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AnnouncementRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	announcement, err := h.services.CourseworkService.UpdateAnnouncement(r.Context(), caller.UserID, classID, announcementID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AnnouncementResponse{Announcement: announcement}, http.StatusOK)
}

func (h *Handler) pinAnnouncement(w http.ResponseWriter, r *http.Request) {
	caller, classID, err := classScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	announcementID, err := pathID(r, "announcementID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.PinRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	announcement, err := h.services.CourseworkService.PinAnnouncement(r.Context(), caller.UserID, classID, announcementID, req.Pinned)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AnnouncementResponse{Announcement: announcement}, http.StatusOK)
}

func (h *Handler) deleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	caller, classID, err := classScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	announcementID, err := pathID(r, "announcementID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CourseworkService.DeleteAnnouncement(r.Context(), caller.UserID, classID, announcementID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	caller, classID, err := classScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	announcementID, err := pathID(r, "announcementID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CourseworkService.ListComments(r.Context(), caller.UserID, classID, announcementID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CommentsResponse{Comments: comments}, http.StatusOK)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	caller, classID, err := classScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	announcementID, err := pathID(r, "announcementID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CommentRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CourseworkService.AddComment(r.Context(), caller.UserID, classID, announcementID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CommentResponse{Comment: comment}, http.StatusCreated)
}
