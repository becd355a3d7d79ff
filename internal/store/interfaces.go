package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lms/models"
)

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts a user and returns the stored row.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// CreateInvitationPlaceholder inserts an unverified row with the
	// invitation sentinel password. ErrEmailAlreadyExists if the email exists.
	CreateInvitationPlaceholder(ctx context.Context, email string) (models.User, error)

	// ClaimInvitationPlaceholder turns an unclaimed placeholder into a regular
	// unverified account. ErrNoUserWasFound if there is no such placeholder.
	ClaimInvitationPlaceholder(ctx context.Context, user models.User) (models.User, error)

	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// SetVerifyToken replaces the outstanding verification digest of an
	// unverified user.
	SetVerifyToken(ctx context.Context, userID int64, tokenHash string) error

	// ConsumeVerifyToken atomically marks the matching unverified user as
	// verified. ErrTokenNotMatched when zero rows were affected.
	ConsumeVerifyToken(ctx context.Context, tokenHash string) error

	// SetResetToken stores a reset digest that expires ttl from now, measured
	// on the database clock.
	SetResetToken(ctx context.Context, userID int64, tokenHash string, ttl time.Duration) error

	// ConsumeResetToken atomically replaces the password of the user holding
	// an unexpired reset digest. ErrTokenNotMatched when zero rows were affected.
	ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string) error

	// MergeProfile merges the non-empty fields of patch into the stored profile.
	MergeProfile(ctx context.Context, userID int64, patch models.Profile) (models.User, error)

	// LinkExternalAccount records that the identity provider vouched for the
	// email: the account becomes verified, its pending verification digest is
	// dropped, and a password set before verification is discarded. The
	// picture is stored only when none is set.
	LinkExternalAccount(ctx context.Context, userID int64, picture string) (models.User, error)

	// ClearExpiredResetTokens nulls reset digests that expired by the
	// database clock.
	ClearExpiredResetTokens(ctx context.Context) (int64, error)
}

// ClassRepository stores classes and memberships.
type ClassRepository interface {
	// CreateClass inserts the class and enrolls its owner as teacher in one
	// transaction. ErrClassCodeTaken on a join code collision.
	CreateClass(ctx context.Context, class models.Class) (models.Class, error)

	FindClassByID(ctx context.Context, classID int64) (models.Class, error)
	FindClassByCode(ctx context.Context, code string) (models.Class, error)
	ListClassesForUser(ctx context.Context, userID int64) ([]models.ClassMembership, error)

	// Enroll adds a membership; an existing membership is left unchanged.
	Enroll(ctx context.Context, enrollment models.Enrollment) error

	// GetRole returns the user's role in the class or ErrEnrollmentNotFound.
	GetRole(ctx context.Context, userID, classID int64) (models.Role, error)
}

// CourseworkRepository stores the class stream and classwork. Every lookup is
// scoped by class id so a row of another class reads as not found.
type CourseworkRepository interface {
	CreateAnnouncement(ctx context.Context, announcement models.Announcement) (models.Announcement, error)

	// ListAnnouncements returns pinned announcements first, newest first.
	// Announcements scheduled in the future are included only when
	// includeScheduled is set.
	ListAnnouncements(ctx context.Context, classID int64, includeScheduled bool) ([]models.Announcement, error)

	FindAnnouncement(ctx context.Context, classID, announcementID int64) (models.Announcement, error)

	// UpdateAnnouncement replaces title, content, tags and schedule.
	UpdateAnnouncement(ctx context.Context, announcement models.Announcement) (models.Announcement, error)

	SetAnnouncementPinned(ctx context.Context, classID, announcementID int64, pinned bool) (models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, classID, announcementID int64) error

	AddComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// ListComments returns comments oldest first with the author's name and
	// picture.
	ListComments(ctx context.Context, announcementID int64) ([]models.Comment, error)

	CreateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	ListAssignments(ctx context.Context, classID int64) ([]models.Assignment, error)
	FindAssignment(ctx context.Context, classID, assignmentID int64) (models.Assignment, error)
	UpdateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	DeleteAssignment(ctx context.Context, classID, assignmentID int64) error

	// SubmitWork creates or revives the student's submission and attaches
	// files in one transaction. A file key already attached is skipped.
	SubmitWork(ctx context.Context, assignmentID, userID int64, files []models.SubmissionFile) (models.Submission, error)

	// FindSubmission returns the student's live submission with its files,
	// or ErrSubmissionNotFound.
	FindSubmission(ctx context.Context, assignmentID, userID int64) (models.Submission, error)

	// SetSubmissionDone marks the work handed in (creating or reviving the
	// submission) or withdraws it without deleting grade or files.
	SetSubmissionDone(ctx context.Context, assignmentID, userID int64, done bool) error

	// ListSubmissions returns every live submission with student name,
	// email and files.
	ListSubmissions(ctx context.Context, assignmentID int64) ([]models.Submission, error)

	// GradeSubmission stores the grade, creating a submission row when the
	// student never handed anything in.
	GradeSubmission(ctx context.Context, grade models.Grade) (models.Submission, error)
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
