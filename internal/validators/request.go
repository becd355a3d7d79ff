package validators

import (
	"context"
	"encoding/hex"
	"math"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-lms/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldNewPassword = "new_password"
	FieldToken       = "token"
	FieldResetToken  = "reset_token"
	FieldAssertion   = "assertion"
	FieldCode        = "code"
	FieldRole        = "role"
	FieldContentType = "content_type"
	FieldKey         = "key"
)

const (
	minLoginPasswordLength = 6
	minPasswordLength      = 8
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
	resetTokenLength = 64

	maxTags            = 20
	maxSubmissionFiles = 20
)

// RequestValidator checks the JSON bodies accepted by the HTTP API.
// It never mutates its input; normalisation (trimming, lower-casing) is the
// caller's job.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.check(fields, []string{FieldName, FieldEmail, FieldNewPassword}, map[string]string{
			FieldName: value.Name, FieldEmail: value.Email, FieldNewPassword: value.Password,
		})
	case models.LoginRequest:
		return v.check(fields, []string{FieldEmail, FieldPassword}, map[string]string{
			FieldEmail: value.Email, FieldPassword: value.Password,
		})
	case models.ForgotPasswordRequest:
		return v.check(fields, []string{FieldEmail}, map[string]string{
			FieldEmail: value.Email,
		})
	case models.ResetPasswordRequest:
		return v.check(fields, []string{FieldResetToken, FieldNewPassword}, map[string]string{
			FieldResetToken: value.Token, FieldNewPassword: value.Password,
		})
	case models.ExternalAuthRequest:
		return v.check(fields, []string{FieldAssertion}, map[string]string{
			FieldAssertion: value.RawAssertion(),
		})
	case models.UpdateProfileRequest:
		return v.check(fields, []string{FieldName}, map[string]string{
			FieldName: value.Name,
		})
	case models.CreateClassRequest:
		if strings.TrimSpace(value.Name) == "" {
			return ErrClassNameRequired
		}
		return nil
	case models.JoinClassRequest:
		return v.check(fields, []string{FieldCode}, map[string]string{
			FieldCode: value.Code,
		})
	case models.InviteRequest:
		if err := validateEmail(value.Email); err != nil {
			return err
		}
		if !value.Role.Valid() {
			return ErrInvalidRole
		}
		return nil
	case models.AcceptInviteRequest:
		return v.check(fields, []string{FieldToken}, map[string]string{
			FieldToken: value.Token,
		})
	case models.AvatarUploadRequest:
		return v.check(fields, []string{FieldContentType}, map[string]string{
			FieldContentType: value.ContentType,
		})
	case models.SetAvatarRequest:
		return v.check(fields, []string{FieldKey}, map[string]string{
			FieldKey: value.Key,
		})
	case models.AnnouncementRequest:
		if strings.TrimSpace(value.Title) == "" {
			return ErrTitleRequired
		}
		if value.Content.Empty() {
			return ErrContentRequired
		}
		if len(value.Tags) > maxTags {
			return ErrTooManyTags
		}
		return nil
	case models.CommentRequest:
		if strings.TrimSpace(value.Text) == "" {
			return ErrCommentRequired
		}
		return nil
	case models.AssignmentRequest:
		if strings.TrimSpace(value.Title) == "" {
			return ErrTitleRequired
		}
		if value.Type != "" && !value.Type.Valid() {
			return ErrInvalidAssignmentType
		}
		if value.Points != nil && *value.Points < 0 {
			return ErrInvalidPoints
		}
		return nil
	case models.SubmissionUploadRequest:
		if strings.TrimSpace(value.Filename) == "" {
			return ErrFilenameRequired
		}
		if strings.TrimSpace(value.ContentType) == "" {
			return ErrContentTypeRequired
		}
		return nil
	case models.SubmitRequest:
		if len(value.Files) == 0 {
			return ErrNoFiles
		}
		if len(value.Files) > maxSubmissionFiles {
			return ErrTooManyFiles
		}
		for _, f := range value.Files {
			if strings.TrimSpace(f.Key) == "" {
				return ErrObjectKeyRequired
			}
			if strings.TrimSpace(f.Filename) == "" {
				return ErrFilenameRequired
			}
		}
		return nil
	case models.GradeRequest:
		if value.StudentID <= 0 {
			return ErrStudentRequired
		}
		if value.Grade == nil || *value.Grade < 0 || math.IsNaN(*value.Grade) || math.IsInf(*value.Grade, 0) {
			return ErrInvalidGrade
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

// check validates values for the requested fields, or for defaults when no
// fields were requested.
func (v *RequestValidator) check(fields, defaults []string, values map[string]string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	for _, f := range fields {
		value, ok := values[f]
		if !ok {
			return ErrUnknownField
		}
		if err := validateField(f, value); err != nil {
			return err
		}
	}

	return nil
}

func validateField(field, value string) error {
	switch field {
	case FieldName:
		if strings.TrimSpace(value) == "" {
			return ErrNameRequired
		}
	case FieldEmail:
		return validateEmail(value)
	case FieldPassword:
		if value == "" {
			return ErrPasswordRequired
		}
		if len(value) < minLoginPasswordLength {
			return ErrPasswordTooShort
		}
	case FieldNewPassword:
		return ValidatePasswordStrength(value)
	case FieldResetToken:
		if len(value) != resetTokenLength {
			return ErrInvalidResetToken
		}
		if _, err := hex.DecodeString(value); err != nil {
			return ErrInvalidResetToken
		}
	case FieldToken:
		if strings.TrimSpace(value) == "" {
			return ErrTokenRequired
		}
	case FieldAssertion:
		if strings.TrimSpace(value) == "" {
			return ErrAssertionRequired
		}
	case FieldCode:
		if strings.TrimSpace(value) == "" {
			return ErrClassCodeRequired
		}
	case FieldContentType:
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(value)), "image/") {
			return ErrInvalidContentType
		}
	case FieldKey:
		if strings.TrimSpace(value) == "" {
			return ErrObjectKeyRequired
		}
	default:
		return ErrUnknownField
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	// reject "Name <addr>" forms
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@"):], ".") {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePasswordStrength enforces the password policy for new passwords:
// at least 8 characters with an upper-case letter, a lower-case letter, a digit
// and a special character, and no more than 72 bytes.
func ValidatePasswordStrength(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}

	if len([]rune(password)) < minPasswordLength || !upper || !lower || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}
