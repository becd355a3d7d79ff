package models

import "time"

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ExternalAuthRequest is the body of POST /api/auth/external.
// Token is accepted as an alias of Assertion for the Google sign-in button,
// which posts {"token": "<id token>"}.
type ExternalAuthRequest struct {
	Assertion string `json:"assertion"`
	Token     string `json:"token"`
}

// RawAssertion returns whichever of Assertion or Token was provided.
func (r ExternalAuthRequest) RawAssertion() string {
	if r.Assertion != "" {
		return r.Assertion
	}
	return r.Token
}

// ForgotPasswordRequest is the body of POST /api/forgot.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResendVerificationRequest is the body of POST /api/verify/resend.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/reset.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/users/update.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// AvatarUploadRequest is the body of POST /api/users/avatar/upload-url.
type AvatarUploadRequest struct {
	ContentType string `json:"content_type"`
}

// SetAvatarRequest is the body of PUT /api/users/avatar.
type SetAvatarRequest struct {
	Key string `json:"key"`
}

// CreateClassRequest is the body of POST /api/classes.
type CreateClassRequest struct {
	Name    string `json:"name"`
	Section string `json:"section"`
	Subject string `json:"subject"`
	Room    string `json:"room"`
}

// JoinClassRequest is the body of POST /api/classes/join.
type JoinClassRequest struct {
	Code string `json:"code"`
}

// InviteRequest is the body of POST /api/classes/{id}/invite.
type InviteRequest struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// AcceptInviteRequest is the body of POST /api/classes/accept.
type AcceptInviteRequest struct {
	Token string `json:"token"`
}

// AuthResponse is returned by every successful login path.
type AuthResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User PublicUser `json:"user"`
}

// MessageResponse carries a human-readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ClassResponse wraps a single class.
type ClassResponse struct {
	Class Class `json:"class"`
}

// ClassesResponse lists the caller's classes with their role in each.
type ClassesResponse struct {
	Classes []ClassMembership `json:"classes"`
}

// JoinClassResponse is returned after joining a class.
type JoinClassResponse struct {
	ClassID int64 `json:"classId"`
}

// PingResponse is the body of GET /api/ping.
type PingResponse struct {
	OK bool `json:"ok"`
}

// AvatarResponse is returned after the profile picture changed.
type AvatarResponse struct {
	Picture string `json:"picture"`
}

// UploadTarget describes where and how a client uploads an object directly
// to the object store.
type UploadTarget struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	Method    string `json:"method"`
}

// AnnouncementRequest is the body of POST and PUT /api/classes/{id}/announcements.
type AnnouncementRequest struct {
	Title    string     `json:"title"`
	Content  Document   `json:"content"`
	Tags     []string   `json:"tags"`
	Schedule *time.Time `json:"schedule"`
}

// PinRequest is the body of PUT .../announcements/{announcementID}/pin.
type PinRequest struct {
	Pinned bool `json:"pinned"`
}

// CommentRequest is the body of POST .../announcements/{announcementID}/comments.
type CommentRequest struct {
	Text string `json:"text"`
}

// AssignmentRequest is the body of POST and PUT /api/classes/{id}/assignments.
type AssignmentRequest struct {
	Type        AssignmentType `json:"type"`
	Title       string         `json:"title"`
	Description Document       `json:"description"`
	Due         *time.Time     `json:"due"`
	Points      *int32         `json:"points"`
}

// SubmissionUploadRequest is the body of POST .../submission/upload-url.
type SubmissionUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

// SubmittedFile names an object the student already uploaded.
type SubmittedFile struct {
	Key      string `json:"key"`
	Filename string `json:"filename"`
}

// SubmitRequest is the body of POST .../assignments/{assignmentID}/submit.
type SubmitRequest struct {
	Files []SubmittedFile `json:"files"`
}

// MarkDoneRequest is the body of PUT .../assignments/{assignmentID}/mark-done.
type MarkDoneRequest struct {
	Done bool `json:"done"`
}

// GradeRequest is the body of PUT .../assignments/{assignmentID}/grades.
type GradeRequest struct {
	StudentID int64    `json:"studentId"`
	Grade     *float64 `json:"grade"`
	Feedback  string   `json:"feedback"`
}

// ClassDetailResponse is a class together with the caller's role in it.
type ClassDetailResponse struct {
	Class ClassMembership `json:"class"`
}

// AnnouncementResponse wraps a single announcement.
type AnnouncementResponse struct {
	Announcement Announcement `json:"announcement"`
}

// AnnouncementsResponse lists a class stream.
type AnnouncementsResponse struct {
	Announcements []Announcement `json:"announcements"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment Comment `json:"comment"`
}

// CommentsResponse lists the comments under an announcement.
type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}

// AssignmentResponse wraps a single assignment.
type AssignmentResponse struct {
	Assignment Assignment `json:"assignment"`
}

// AssignmentsResponse lists a class's classwork.
type AssignmentsResponse struct {
	Assignments []Assignment `json:"assignments"`
}

// SubmissionStatusResponse is a student's own hand-in. Submission is nil
// until something was handed in.
type SubmissionStatusResponse struct {
	Submission *Submission `json:"submission"`
	Done       bool        `json:"done"`
}

// SubmissionsResponse lists every hand-in for an assignment.
type SubmissionsResponse struct {
	Submissions []Submission `json:"submissions"`
}
