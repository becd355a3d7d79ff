package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-lms/models"
)

// TokenService issues and verifies the signed tokens of the system: session
// bearer tokens and class invitation tokens.
type TokenService interface {
	// IssueBearer signs a session token carrying the user's identity.
	IssueBearer(ctx context.Context, user models.User) (models.Token, error)

	// VerifyBearer returns the identity embedded into raw, or
	// [ErrInvalidToken] / [ErrExpiredToken].
	VerifyBearer(ctx context.Context, raw string) (models.Identity, error)

	IssueInvite(ctx context.Context, classID, userID int64, role models.Role) (string, error)
	VerifyInvite(ctx context.Context, raw string) (models.InviteClaims, error)
}

// AuthService owns the credential lifecycle: registration, password login,
// email verification, password reset and federated login.
type AuthService interface {
	Register(ctx context.Context, req models.SignupRequest) error
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	VerifyEmail(ctx context.Context, rawToken string) error
	ResendVerification(ctx context.Context, req models.ResendVerificationRequest) error
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	AuthenticateExternal(ctx context.Context, req models.ExternalAuthRequest) (models.AuthResponse, error)
}

// UserService serves the profile endpoints of the authenticated caller.
type UserService interface {
	GetMe(ctx context.Context, userID int64) (models.PublicUser, error)
	GetUser(ctx context.Context, userID int64) (models.PublicUser, error)
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.PublicUser, error)
	CreateAvatarUpload(ctx context.Context, userID int64, req models.AvatarUploadRequest) (models.UploadTarget, error)
	SetAvatar(ctx context.Context, userID int64, req models.SetAvatarRequest) (string, error)
}

// ClassService manages classes, enrollments and invitations.
type ClassService interface {
	CreateClass(ctx context.Context, ownerID int64, req models.CreateClassRequest) (models.Class, error)
	ListClasses(ctx context.Context, userID int64) ([]models.ClassMembership, error)
	JoinClass(ctx context.Context, userID int64, req models.JoinClassRequest) (models.Class, error)
	Invite(ctx context.Context, inviterID, classID int64, req models.InviteRequest) error
	AcceptInvite(ctx context.Context, userID int64, req models.AcceptInviteRequest) (models.Class, error)
}

// CourseworkService serves the class stream and classwork of one class. Every
// call checks the caller's role in the class first: members read, teachers
// write, students hand in.
type CourseworkService interface {
	// GetClass returns the class with the caller's role in it.
	GetClass(ctx context.Context, userID, classID int64) (models.ClassMembership, error)

	ListAnnouncements(ctx context.Context, userID, classID int64) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, userID, classID int64, req models.AnnouncementRequest) (models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, userID, classID, announcementID int64, req models.AnnouncementRequest) (models.Announcement, error)
	PinAnnouncement(ctx context.Context, userID, classID, announcementID int64, pinned bool) (models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, userID, classID, announcementID int64) error
	ListComments(ctx context.Context, userID, classID, announcementID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, userID, classID, announcementID int64, req models.CommentRequest) (models.Comment, error)

	ListAssignments(ctx context.Context, userID, classID int64) ([]models.Assignment, error)
	GetAssignment(ctx context.Context, userID, classID, assignmentID int64) (models.Assignment, error)
	CreateAssignment(ctx context.Context, userID, classID int64, req models.AssignmentRequest) (models.Assignment, error)
	UpdateAssignment(ctx context.Context, userID, classID, assignmentID int64, req models.AssignmentRequest) (models.Assignment, error)
	DeleteAssignment(ctx context.Context, userID, classID, assignmentID int64) error

	GetSubmission(ctx context.Context, userID, classID, assignmentID int64) (models.SubmissionStatusResponse, error)
	CreateSubmissionUpload(ctx context.Context, userID, classID, assignmentID int64, req models.SubmissionUploadRequest) (models.UploadTarget, error)
	Submit(ctx context.Context, userID, classID, assignmentID int64, req models.SubmitRequest) (models.Submission, error)
	MarkDone(ctx context.Context, userID, classID, assignmentID int64, done bool) error
	ListSubmissions(ctx context.Context, userID, classID, assignmentID int64) ([]models.Submission, error)
	Grade(ctx context.Context, userID, classID, assignmentID int64, req models.GradeRequest) (models.Submission, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
