package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/service"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/models"
)

const internalErrorMessage = "Internal server error"

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	ErrInvalidJSON: {http.StatusBadRequest, "Invalid JSON"},
	ErrInvalidID:   {http.StatusBadRequest, "Invalid id"},

	service.ErrEmailAlreadyInUse:     {http.StatusConflict, "Email already in use"},
	service.ErrInvalidCredentials:    {http.StatusUnauthorized, "Invalid email or password"},
	service.ErrNotVerified:           {http.StatusForbidden, "Please verify your email before logging in"},
	service.ErrInvalidOrUsedToken:    {http.StatusBadRequest, "Invalid or already used verification link"},
	service.ErrInvalidOrExpiredToken: {http.StatusBadRequest, "Invalid or expired reset link"},
	service.ErrInvalidAssertion:      {http.StatusBadRequest, "Invalid identity token"},
	service.ErrFederationDisabled:    {http.StatusServiceUnavailable, "External login is not available"},

	service.ErrUserNotFound:      {http.StatusNotFound, "User not found"},
	service.ErrClassNotFound:     {http.StatusNotFound, "Class not found"},
	service.ErrNotClassTeacher:   {http.StatusForbidden, "Only a teacher of this class can do that"},
	service.ErrAlreadyClassOwner: {http.StatusConflict, "You already own this class"},
	service.ErrInvalidInvite:     {http.StatusBadRequest, "Invalid or expired invitation"},
	service.ErrInviteMismatch:    {http.StatusForbidden, "This invitation was sent to another account"},
	service.ErrNotClassMember:    {http.StatusForbidden, "You are not a member of this class"},
	service.ErrNotClassStudent:   {http.StatusForbidden, "Only a student of this class can do that"},

	service.ErrAnnouncementNotFound: {http.StatusNotFound, "Announcement not found"},
	service.ErrAssignmentNotFound:   {http.StatusNotFound, "Assignment not found"},
	service.ErrStudentNotEnrolled:   {http.StatusBadRequest, "Student is not enrolled in this class"},

	service.ErrUploadsDisabled: {http.StatusServiceUnavailable, "Uploads are not available"},
	service.ErrForeignUpload:   {http.StatusForbidden, "Upload does not belong to you"},
}

// responseFromError returns the status and the client-safe message for err.
// Validation errors keep their own message; anything unknown is a 500.
func responseFromError(err error) errorResponse {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return errorResponse{http.StatusBadRequest, validationErr.Error()}
	}

	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, internalErrorMessage}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError maps err to a JSON error body. Server-side failures are logged
// with their cause; the client only ever sees the generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)
	if resp.status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", resp.status).Msg("request failed")
	}
	writeErrorMessage(w, resp.status, resp.message)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
