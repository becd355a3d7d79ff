package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-lms/internal/service"
	"github.com/MKhiriev/go-lms/internal/validators"
	"github.com/MKhiriev/go-lms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetClass(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "member", wantStatus: http.StatusOK},
		{name: "outsider", serviceErr: service.ErrNotClassMember, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, Options{})
			m.coursework.EXPECT().GetClass(gomock.Any(), caller.UserID, int64(5)).
				Return(models.ClassMembership{Class: models.Class{ClassID: 5, Name: "Math"}, Role: models.RoleStudent}, tt.serviceErr)

			rec := serve(t, router, http.MethodGet, "/api/classes/5", "", goodToken)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.serviceErr == nil {
				got := decodeBody[models.ClassDetailResponse](t, rec)
				assert.Equal(t, "Math", got.Class.Name)
				assert.Equal(t, models.RoleStudent, got.Class.Role)
			}
		})
	}
}

func TestAnnouncementRoutes(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().ListAnnouncements(gomock.Any(), caller.UserID, int64(5)).
			Return([]models.Announcement{{AnnouncementID: 1, Title: "Welcome", Pinned: true}}, nil)

		rec := serve(t, router, http.MethodGet, "/api/classes/5/announcements", "", goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[models.AnnouncementsResponse](t, rec)
		require.Len(t, got.Announcements, 1)
		assert.True(t, got.Announcements[0].Pinned)
	})

	t.Run("create", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().CreateAnnouncement(gomock.Any(), caller.UserID, int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ int64, req models.AnnouncementRequest) (models.Announcement, error) {
				assert.Equal(t, "Welcome", req.Title)
				assert.JSONEq(t, `{"blocks":[]}`, string(req.Content))
				assert.Equal(t, []string{"intro"}, req.Tags)
				return models.Announcement{AnnouncementID: 9, Title: req.Title}, nil
			})

		rec := serve(t, router, http.MethodPost, "/api/classes/5/announcements",
			`{"title":"Welcome","content":{"blocks":[]},"tags":["intro"]}`, goodToken)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(9), decodeBody[models.AnnouncementResponse](t, rec).Announcement.AnnouncementID)
	})

	t.Run("student cannot create", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().CreateAnnouncement(gomock.Any(), caller.UserID, int64(5), gomock.Any()).
			Return(models.Announcement{}, service.ErrNotClassTeacher)

		rec := serve(t, router, http.MethodPost, "/api/classes/5/announcements", `{"title":"x","content":{}}`, goodToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().UpdateAnnouncement(gomock.Any(), caller.UserID, int64(5), int64(9), gomock.Any()).
			Return(models.Announcement{AnnouncementID: 9, Title: "Edited"}, nil)

		rec := serve(t, router, http.MethodPut, "/api/classes/5/announcements/9", `{"title":"Edited","content":{}}`, goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Edited", decodeBody[models.AnnouncementResponse](t, rec).Announcement.Title)
	})

	t.Run("pin", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().PinAnnouncement(gomock.Any(), caller.UserID, int64(5), int64(9), true).
			Return(models.Announcement{AnnouncementID: 9, Pinned: true}, nil)

		rec := serve(t, router, http.MethodPut, "/api/classes/5/announcements/9/pin", `{"pinned":true}`, goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeBody[models.AnnouncementResponse](t, rec).Announcement.Pinned)
	})

	t.Run("delete", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().DeleteAnnouncement(gomock.Any(), caller.UserID, int64(5), int64(9)).Return(nil)

		rec := serve(t, router, http.MethodDelete, "/api/classes/5/announcements/9", "", goodToken)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete unknown", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().DeleteAnnouncement(gomock.Any(), caller.UserID, int64(5), int64(9)).
			Return(service.ErrAnnouncementNotFound)

		rec := serve(t, router, http.MethodDelete, "/api/classes/5/announcements/9", "", goodToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad announcement id", func(t *testing.T) {
		router, _ := newTestRouter(t, Options{})

		rec := serve(t, router, http.MethodDelete, "/api/classes/5/announcements/abc", "", goodToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCommentRoutes(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().ListComments(gomock.Any(), caller.UserID, int64(5), int64(9)).
			Return([]models.Comment{{CommentID: 1, Text: "hi", AuthorName: "Ann"}}, nil)

		rec := serve(t, router, http.MethodGet, "/api/classes/5/announcements/9/comments", "", goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[models.CommentsResponse](t, rec)
		require.Len(t, got.Comments, 1)
		assert.Equal(t, "Ann", got.Comments[0].AuthorName)
	})

	t.Run("add", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().AddComment(gomock.Any(), caller.UserID, int64(5), int64(9), models.CommentRequest{Text: "hi"}).
			Return(models.Comment{CommentID: 2, Text: "hi"}, nil)

		rec := serve(t, router, http.MethodPost, "/api/classes/5/announcements/9/comments", `{"text":"hi"}`, goodToken)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(2), decodeBody[models.CommentResponse](t, rec).Comment.CommentID)
	})

	t.Run("empty text", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().AddComment(gomock.Any(), caller.UserID, int64(5), int64(9), gomock.Any()).
			Return(models.Comment{}, &service.ValidationError{Err: validators.ErrCommentRequired})

		rec := serve(t, router, http.MethodPost, "/api/classes/5/announcements/9/comments", `{"text":""}`, goodToken)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, validators.ErrCommentRequired.Error(), errorBody(t, rec))
	})
}

func TestAssignmentRoutes(t *testing.T) {
	points := int32(10)

	t.Run("list", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().ListAssignments(gomock.Any(), caller.UserID, int64(5)).
			Return([]models.Assignment{{AssignmentID: 4, Title: "Essay", Points: &points}}, nil)

		rec := serve(t, router, http.MethodGet, "/api/classes/5/assignments", "", goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[models.AssignmentsResponse](t, rec)
		require.Len(t, got.Assignments, 1)
		require.NotNil(t, got.Assignments[0].Points)
		assert.Equal(t, points, *got.Assignments[0].Points)
	})

	t.Run("create", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().CreateAssignment(gomock.Any(), caller.UserID, int64(5), gomock.Any()).
			Return(models.Assignment{AssignmentID: 4, Title: "Essay"}, nil)

		rec := serve(t, router, http.MethodPost, "/api/classes/5/assignments", `{"title":"Essay","points":10}`, goodToken)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(4), decodeBody[models.AssignmentResponse](t, rec).Assignment.AssignmentID)
	})

	t.Run("get unknown", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().GetAssignment(gomock.Any(), caller.UserID, int64(5), int64(4)).
			Return(models.Assignment{}, service.ErrAssignmentNotFound)

		rec := serve(t, router, http.MethodGet, "/api/classes/5/assignments/4", "", goodToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().UpdateAssignment(gomock.Any(), caller.UserID, int64(5), int64(4), gomock.Any()).
			Return(models.Assignment{AssignmentID: 4, Title: "Essay v2"}, nil)

		rec := serve(t, router, http.MethodPut, "/api/classes/5/assignments/4", `{"title":"Essay v2"}`, goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Essay v2", decodeBody[models.AssignmentResponse](t, rec).Assignment.Title)
	})

	t.Run("delete", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().DeleteAssignment(gomock.Any(), caller.UserID, int64(5), int64(4)).Return(nil)

		rec := serve(t, router, http.MethodDelete, "/api/classes/5/assignments/4", "", goodToken)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestSubmissionRoutes(t *testing.T) {
	t.Run("status without submission", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().GetSubmission(gomock.Any(), caller.UserID, int64(5), int64(4)).
			Return(models.SubmissionStatusResponse{}, nil)

		rec := serve(t, router, http.MethodGet, "/api/classes/5/assignments/4/submission", "", goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"submission":null,"done":false}`, rec.Body.String())
	})

	t.Run("upload url", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().CreateSubmissionUpload(gomock.Any(), caller.UserID, int64(5), int64(4),
			models.SubmissionUploadRequest{Filename: "essay.pdf", ContentType: "application/pdf"}).
			Return(models.UploadTarget{Key: "submissions/4/7/x.pdf", UploadURL: "https://s3/upload"}, nil)

		rec := serve(t, router, http.MethodPost, "/api/classes/5/assignments/4/submission/upload-url",
			`{"filename":"essay.pdf","content_type":"application/pdf"}`, goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "submissions/4/7/x.pdf", decodeBody[models.UploadTarget](t, rec).Key)
	})

	t.Run("upload url without storage", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().CreateSubmissionUpload(gomock.Any(), caller.UserID, int64(5), int64(4), gomock.Any()).
			Return(models.UploadTarget{}, service.ErrUploadsDisabled)

		rec := serve(t, router, http.MethodPost, "/api/classes/5/assignments/4/submission/upload-url",
			`{"filename":"essay.pdf","content_type":"application/pdf"}`, goodToken)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("submit", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().Submit(gomock.Any(), caller.UserID, int64(5), int64(4),
			models.SubmitRequest{Files: []models.SubmittedFile{{Key: "submissions/4/7/x.pdf", Filename: "essay.pdf"}}}).
			Return(models.Submission{SubmissionID: 8, Files: []models.SubmissionFile{{Filename: "essay.pdf"}}}, nil)

		rec := serve(t, router, http.MethodPost, "/api/classes/5/assignments/4/submit",
			`{"files":[{"key":"submissions/4/7/x.pdf","filename":"essay.pdf"}]}`, goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[models.SubmissionStatusResponse](t, rec)
		assert.True(t, got.Done)
		require.NotNil(t, got.Submission)
		assert.Len(t, got.Submission.Files, 1)
	})

	t.Run("submit foreign key", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().Submit(gomock.Any(), caller.UserID, int64(5), int64(4), gomock.Any()).
			Return(models.Submission{}, service.ErrForeignUpload)

		rec := serve(t, router, http.MethodPost, "/api/classes/5/assignments/4/submit",
			`{"files":[{"key":"submissions/4/99/x.pdf","filename":"essay.pdf"}]}`, goodToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("teacher cannot submit", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().Submit(gomock.Any(), caller.UserID, int64(5), int64(4), gomock.Any()).
			Return(models.Submission{}, service.ErrNotClassStudent)

		rec := serve(t, router, http.MethodPost, "/api/classes/5/assignments/4/submit", `{"files":[]}`, goodToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("mark undone", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().MarkDone(gomock.Any(), caller.UserID, int64(5), int64(4), false).Return(nil)

		rec := serve(t, router, http.MethodPut, "/api/classes/5/assignments/4/mark-done", `{"done":false}`, goodToken)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		router, m := newTestRouter(t, Options{})
		m.coursework.EXPECT().ListSubmissions(gomock.Any(), caller.UserID, int64(5), int64(4)).
			Return([]models.Submission{{SubmissionID: 8, StudentName: "Bob"}}, nil)

		rec := serve(t, router, http.MethodGet, "/api/classes/5/assignments/4/submissions", "", goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[models.SubmissionsResponse](t, rec)
		require.Len(t, got.Submissions, 1)
		assert.Equal(t, "Bob", got.Submissions[0].StudentName)
	})
}

func TestGradeRoute(t *testing.T) {
	grade := 8.5

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "graded", wantStatus: http.StatusOK},
		{name: "above points", serviceErr: &service.ValidationError{Err: validators.ErrGradeAbovePoints}, wantStatus: http.StatusBadRequest},
		{name: "student not enrolled", serviceErr: service.ErrStudentNotEnrolled, wantStatus: http.StatusBadRequest},
		{name: "student grading", serviceErr: service.ErrNotClassTeacher, wantStatus: http.StatusForbidden},
		{name: "unknown assignment", serviceErr: service.ErrAssignmentNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, Options{})
			m.coursework.EXPECT().Grade(gomock.Any(), caller.UserID, int64(5), int64(4),
				models.GradeRequest{StudentID: 20, Grade: &grade, Feedback: "good"}).
				Return(models.Submission{SubmissionID: 8, Graded: true, Grade: &grade}, tt.serviceErr)

			rec := serve(t, router, http.MethodPut, "/api/classes/5/assignments/4/grades",
				`{"studentId":20,"grade":8.5,"feedback":"good"}`, goodToken)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.serviceErr == nil {
				got := decodeBody[models.SubmissionStatusResponse](t, rec)
				require.NotNil(t, got.Submission)
				assert.Equal(t, grade, *got.Submission.Grade)
			}
		})
	}
}
