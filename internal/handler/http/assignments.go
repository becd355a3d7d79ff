package http

import (
	"net/http"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/models"
)

// assignmentScope returns the caller, the class and the {assignmentID} of
// the request.
func assignmentScope(r *http.Request) (models.Identity, int64, int64, error) {
	caller, classID, err := classScope(r)
	if err != nil {
		return models.Identity{}, 0, 0, err
	}
	assignmentID, err := pathID(r, "assignmentID")
	if err != nil {
		return models.Identity{}, 0, 0, err
	}
	return caller, classID, assignmentID, nil
}

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	caller, classID, err := classScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	assignments, err := h.services.CourseworkService.ListAssignments(r.Context(), caller.UserID, classID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AssignmentsResponse{Assignments: assignments}, http.StatusOK)
}

func (h *Handler) createAssignment(w http.ResponseWriter, r *http.Request) {
	caller, classID, err := classScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AssignmentRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	assignment, err := h.services.CourseworkService.CreateAssignment(r.Context(), caller.UserID, classID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AssignmentResponse{Assignment: assignment}, http.StatusCreated)
}

func (h *Handler) getAssignment(w http.ResponseWriter, r *http.Request) {
	caller, classID, assignmentID, err := assignmentScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	assignment, err := h.services.CourseworkService.GetAssignment(r.Context(), caller.UserID, classID, assignmentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AssignmentResponse{Assignment: assignment}, http.StatusOK)
}

func (h *Handler) updateAssignment(w http.ResponseWriter, r *http.Request) {
	caller, classID, assignmentID, err := assignmentScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AssignmentRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	assignment, err := h.services.CourseworkService.UpdateAssignment(r.Context(), caller.UserID, classID, assignmentID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AssignmentResponse{Assignment: assignment}, http.StatusOK)
}

func (h *Handler) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	caller, classID, assignmentID, err := assignmentScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CourseworkService.DeleteAssignment(r.Context(), caller.UserID, classID, assignmentID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getSubmission(w http.ResponseWriter, r *http.Request) {
	caller, classID, assignmentID, err := assignmentScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status, err := h.services.CourseworkService.GetSubmission(r.Context(), caller.UserID, classID, assignmentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) submissionUploadURL(w http.ResponseWriter, r *http.Request) {
	caller, classID, assignmentID, err := assignmentScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SubmissionUploadRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	target, err := h.services.CourseworkService.CreateSubmissionUpload(r.Context(), caller.UserID, classID, assignmentID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, target, http.StatusOK)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	caller, classID, assignmentID, err := assignmentScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SubmitRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.services.CourseworkService.Submit(r.Context(), caller.UserID, classID, assignmentID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SubmissionStatusResponse{Submission: &submission, Done: true}, http.StatusOK)
}

func (h *Handler) markDone(w http.ResponseWriter, r *http.Request) {
	caller, classID, assignmentID, err := assignmentScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.MarkDoneRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CourseworkService.MarkDone(r.Context(), caller.UserID, classID, assignmentID, req.Done); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	caller, classID, assignmentID, err := assignmentScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	submissions, err := h.services.CourseworkService.ListSubmissions(r.Context(), caller.UserID, classID, assignmentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SubmissionsResponse{Submissions: submissions}, http.StatusOK)
}

func (h *Handler) grade(w http.ResponseWriter, r *http.Request) {
	caller, classID, assignmentID, err := assignmentScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.GradeRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.services.CourseworkService.Grade(r.Context(), caller.UserID, classID, assignmentID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("assignment_id", assignmentID).Int64("grader_id", caller.UserID).Msg("grade recorded")
	utils.WriteJSON(w, models.SubmissionStatusResponse{Submission: &submission, Done: submission.Graded}, http.StatusOK)
}
