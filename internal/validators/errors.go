package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("email must be a valid email")
	ErrNameRequired       = errors.New("name is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password length must be at least 6 characters long")
	ErrWeakPassword       = errors.New("password must be at least 8 characters with upper, lower, number and special characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes long")
	ErrInvalidResetToken  = errors.New("token must be a 64 character hex string")
	ErrTokenRequired      = errors.New("token is required")
	ErrAssertionRequired  = errors.New("ID token required")
	ErrClassNameRequired  = errors.New("class name is required")
	ErrClassCodeRequired  = errors.New("class code is required")
	ErrInvalidRole        = errors.New("email and valid role required")
	ErrInvalidContentType = errors.New("only image uploads are allowed")
	ErrObjectKeyRequired  = errors.New("object key is required")

	ErrTitleRequired         = errors.New("title is required")
	ErrContentRequired       = errors.New("content is required")
	ErrTooManyTags           = errors.New("at most 20 tags are allowed")
	ErrCommentRequired       = errors.New("comment text is required")
	ErrInvalidAssignmentType = errors.New("type must be assignment, quiz or question")
	ErrInvalidPoints         = errors.New("points must not be negative")
	ErrFilenameRequired      = errors.New("filename is required")
	ErrContentTypeRequired   = errors.New("content type is required")
	ErrNoFiles               = errors.New("at least one file is required")
	ErrTooManyFiles          = errors.New("at most 20 files can be submitted")
	ErrStudentRequired       = errors.New("studentId is required")
	ErrInvalidGrade          = errors.New("grade must be a non-negative number")
	ErrGradeAbovePoints      = errors.New("grade must not exceed the assignment's points")
)
