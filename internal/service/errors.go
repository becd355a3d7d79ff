package service

import "errors"

var (
	ErrValidation = errors.New("validation error")

	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("email is not verified")

	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token is expired")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrInvalidOrUsedToken    = errors.New("invalid or already used verification token")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrInvalidAssertion      = errors.New("invalid identity assertion")
	ErrFederationDisabled    = errors.New("external login is not configured")

	ErrUserNotFound = errors.New("user not found")

	ErrClassNotFound     = errors.New("class not found")
	ErrNotClassTeacher   = errors.New("only a teacher of the class may do this")
	ErrAlreadyClassOwner = errors.New("you already own this class")
	ErrInvalidInvite     = errors.New("invalid or expired invitation")
	ErrInviteMismatch    = errors.New("invitation was issued to another user")
	ErrNotClassMember    = errors.New("you are not a member of this class")
	ErrNotClassStudent   = errors.New("only a student of the class may do this")

	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrStudentNotEnrolled   = errors.New("student is not enrolled in this class")

	ErrUploadsDisabled = errors.New("uploads are not configured")
	ErrForeignUpload   = errors.New("upload does not belong to the caller")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError carries the message of a rejected request body. It matches
// both [ErrValidation] and the underlying validator error.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

func newValidationError(err error) error {
	return &ValidationError{Err: err}
}
