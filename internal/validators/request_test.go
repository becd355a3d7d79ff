package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-lms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResetToken = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.LoginRequest{}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_Requests(t *testing.T) {
	doc := models.Document(`{"blocks":[]}`)
	points, negative := int32(100), int32(-1)
	grade, negativeGrade := 87.5, -0.5

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "signup ok", obj: models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "Str0ng!pass"}},
		{name: "signup blank name", obj: models.SignupRequest{Name: "  ", Email: "ann@example.com", Password: "Str0ng!pass"}, wantErr: ErrNameRequired},
		{name: "signup bad email", obj: models.SignupRequest{Name: "Ann", Email: "not-an-email", Password: "Str0ng!pass"}, wantErr: ErrInvalidEmail},
		{name: "signup display-name email", obj: models.SignupRequest{Name: "Ann", Email: "Ann <ann@example.com>", Password: "Str0ng!pass"}, wantErr: ErrInvalidEmail},
		{name: "signup weak password", obj: models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "password"}, wantErr: ErrWeakPassword},
		{name: "signup only email checked", obj: models.SignupRequest{Email: "ann@example.com"}, fields: []string{FieldEmail}},

		{name: "login ok", obj: models.LoginRequest{Email: "ann@example.com", Password: "secret"}},
		{name: "login short password", obj: models.LoginRequest{Email: "ann@example.com", Password: "12345"}, wantErr: ErrPasswordTooShort},
		{name: "login missing password", obj: models.LoginRequest{Email: "ann@example.com"}, wantErr: ErrPasswordRequired},
		{name: "login missing email", obj: models.LoginRequest{Password: "secret"}, wantErr: ErrInvalidEmail},

		{name: "forgot ok", obj: models.ForgotPasswordRequest{Email: "ann@example.com"}},
		{name: "forgot bad email", obj: models.ForgotPasswordRequest{Email: "ann@"}, wantErr: ErrInvalidEmail},

		{name: "reset ok", obj: models.ResetPasswordRequest{Token: validResetToken, Password: "N3w!password"}},
		{name: "reset short token", obj: models.ResetPasswordRequest{Token: "abc", Password: "N3w!password"}, wantErr: ErrInvalidResetToken},
		{name: "reset non-hex token", obj: models.ResetPasswordRequest{Token: strings.Repeat("z", 64), Password: "N3w!password"}, wantErr: ErrInvalidResetToken},
		{name: "reset weak password", obj: models.ResetPasswordRequest{Token: validResetToken, Password: "short"}, wantErr: ErrWeakPassword},

		{name: "external assertion", obj: models.ExternalAuthRequest{Assertion: "jwt"}},
		{name: "external token alias", obj: models.ExternalAuthRequest{Token: "jwt"}},
		{name: "external empty", obj: models.ExternalAuthRequest{}, wantErr: ErrAssertionRequired},

		{name: "update ok", obj: models.UpdateProfileRequest{Name: "Ann"}},
		{name: "update empty", obj: models.UpdateProfileRequest{Name: ""}, wantErr: ErrNameRequired},

		{name: "create class ok", obj: models.CreateClassRequest{Name: "Algebra"}},
		{name: "create class no name", obj: models.CreateClassRequest{Section: "A"}, wantErr: ErrClassNameRequired},

		{name: "join ok", obj: models.JoinClassRequest{Code: "ABCD2345"}},
		{name: "join empty", obj: models.JoinClassRequest{}, wantErr: ErrClassCodeRequired},

		{name: "invite ok", obj: models.InviteRequest{Email: "bob@example.com", Role: models.RoleStudent}},
		{name: "invite bad role", obj: models.InviteRequest{Email: "bob@example.com", Role: "admin"}, wantErr: ErrInvalidRole},
		{name: "invite bad email", obj: models.InviteRequest{Email: "bob", Role: models.RoleTeacher}, wantErr: ErrInvalidEmail},

		{name: "accept ok", obj: models.AcceptInviteRequest{Token: "jwt"}},
		{name: "accept empty", obj: models.AcceptInviteRequest{}, wantErr: ErrTokenRequired},

		{name: "avatar upload ok", obj: models.AvatarUploadRequest{ContentType: "image/png"}},
		{name: "avatar upload not image", obj: models.AvatarUploadRequest{ContentType: "application/pdf"}, wantErr: ErrInvalidContentType},

		{name: "set avatar ok", obj: models.SetAvatarRequest{Key: "avatars/1/x.png"}},
		{name: "set avatar empty", obj: models.SetAvatarRequest{}, wantErr: ErrObjectKeyRequired},

		{name: "announcement ok", obj: models.AnnouncementRequest{Title: "Welcome", Content: doc}},
		{name: "announcement no title", obj: models.AnnouncementRequest{Content: doc}, wantErr: ErrTitleRequired},
		{name: "announcement null content", obj: models.AnnouncementRequest{Title: "Welcome", Content: models.Document("null")}, wantErr: ErrContentRequired},
		{name: "announcement too many tags", obj: models.AnnouncementRequest{Title: "Welcome", Content: doc, Tags: make([]string, 21)}, wantErr: ErrTooManyTags},

		{name: "comment ok", obj: models.CommentRequest{Text: "thanks"}},
		{name: "comment blank", obj: models.CommentRequest{Text: " \n"}, wantErr: ErrCommentRequired},

		{name: "assignment ok", obj: models.AssignmentRequest{Title: "Essay", Points: &points}},
		{name: "assignment quiz", obj: models.AssignmentRequest{Type: models.AssignmentTypeQuiz, Title: "Quiz 1"}},
		{name: "assignment bad type", obj: models.AssignmentRequest{Type: "material", Title: "Slides"}, wantErr: ErrInvalidAssignmentType},
		{name: "assignment negative points", obj: models.AssignmentRequest{Title: "Essay", Points: &negative}, wantErr: ErrInvalidPoints},
		{name: "assignment no title", obj: models.AssignmentRequest{}, wantErr: ErrTitleRequired},

		{name: "submission upload ok", obj: models.SubmissionUploadRequest{Filename: "essay.pdf", ContentType: "application/pdf"}},
		{name: "submission upload no filename", obj: models.SubmissionUploadRequest{ContentType: "application/pdf"}, wantErr: ErrFilenameRequired},
		{name: "submission upload no content type", obj: models.SubmissionUploadRequest{Filename: "essay.pdf"}, wantErr: ErrContentTypeRequired},

		{name: "submit ok", obj: models.SubmitRequest{Files: []models.SubmittedFile{{Key: "submissions/1/2/a.pdf", Filename: "a.pdf"}}}},
		{name: "submit nothing", obj: models.SubmitRequest{}, wantErr: ErrNoFiles},
		{name: "submit too many", obj: models.SubmitRequest{Files: make([]models.SubmittedFile, 21)}, wantErr: ErrTooManyFiles},
		{name: "submit missing key", obj: models.SubmitRequest{Files: []models.SubmittedFile{{Filename: "a.pdf"}}}, wantErr: ErrObjectKeyRequired},
		{name: "submit missing filename", obj: models.SubmitRequest{Files: []models.SubmittedFile{{Key: "k"}}}, wantErr: ErrFilenameRequired},

		{name: "grade ok", obj: models.GradeRequest{StudentID: 7, Grade: &grade}},
		{name: "grade no student", obj: models.GradeRequest{Grade: &grade}, wantErr: ErrStudentRequired},
		{name: "grade missing", obj: models.GradeRequest{StudentID: 7}, wantErr: ErrInvalidGrade},
		{name: "grade negative", obj: models.GradeRequest{StudentID: 7, Grade: &negativeGrade}, wantErr: ErrInvalidGrade},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		wantErr  error
	}{
		{"Abcdef1!", nil},
		{"Ab1! with spaces", nil},
		{"", ErrPasswordRequired},
		{"Ab1!", ErrWeakPassword},
		{"abcdefg1!", ErrWeakPassword},
		{"ABCDEFG1!", ErrWeakPassword},
		{"Abcdefgh!", ErrWeakPassword},
		{"Abcdefgh1", ErrWeakPassword},
		{"Aa1!" + strings.Repeat("x", 69), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		err := ValidatePasswordStrength(tt.password)
		if tt.wantErr == nil {
			assert.NoError(t, err, tt.password)
			continue
		}
		assert.ErrorIs(t, err, tt.wantErr, tt.password)
	}
}
