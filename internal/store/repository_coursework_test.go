package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCourseworkRepo(t *testing.T) (*courseworkRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	l := logger.Nop()
	return &courseworkRepository{db: &DB{DB: db, logger: l}, logger: l}, mock, db
}

func announcementRow(id, classID int64, pinned bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(announcementColumns).
		AddRow(id, classID, int64(3), "Welcome", []byte(`{"blocks":[]}`), []byte(`["news"]`), nil, pinned, now, now)
}

func assignmentRow(id, classID int64, points any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(assignmentColumns).
		AddRow(id, classID, "assignment", "Essay", nil, nil, points, now, now)
}

func submissionRow(id, assignmentID, userID int64, grade any) *sqlmock.Rows {
	return sqlmock.NewRows(submissionColumns).
		AddRow(id, assignmentID, userID, time.Now(), grade != nil, grade, "")
}

func TestCreateAnnouncement(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO announcements (class_id,author_id,title,content,tags,schedule)")).
		WithArgs(int64(10), int64(3), "Welcome", `{"blocks":[]}`, `["news"]`, nil).
		WillReturnRows(announcementRow(1, 10, false))

	a, err := repo.CreateAnnouncement(context.Background(), models.Announcement{
		ClassID: 10, AuthorID: 3, Title: "Welcome",
		Content: models.Document(`{"blocks":[]}`), Tags: models.Tags{"news"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.AnnouncementID)
	assert.Equal(t, models.Tags{"news"}, a.Tags)
	assert.JSONEq(t, `{"blocks":[]}`, string(a.Content))
	assert.Nil(t, a.Schedule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAnnouncement_ClassGone(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO announcements").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateAnnouncement(context.Background(), models.Announcement{
		ClassID: 10, AuthorID: 3, Title: "Welcome", Content: models.Document(`{}`),
	})
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestListAnnouncements(t *testing.T) {
	tests := []struct {
		name             string
		includeScheduled bool
		wantScheduleCond bool
	}{
		{name: "teacher sees scheduled", includeScheduled: true},
		{name: "student sees published only", wantScheduleCond: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestCourseworkRepo(t)
			defer db.Close()

			rows := announcementRow(2, 10, true)
			rows.AddRow(int64(1), int64(10), int64(3), "Old", []byte(`{}`), []byte(`[]`), nil, false, time.Now(), time.Now())

			pattern := `FROM announcements WHERE class_id = \$1 ORDER BY`
			if tt.wantScheduleCond {
				pattern = `FROM announcements WHERE class_id = \$1 AND \(schedule IS NULL OR schedule <= now\(\)\) ORDER BY`
			}
			mock.ExpectQuery(pattern).WithArgs(int64(10)).WillReturnRows(rows)

			list, err := repo.ListAnnouncements(context.Background(), 10, tt.includeScheduled)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.True(t, list[0].Pinned)
			assert.Equal(t, models.Tags{}, list[1].Tags)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindAnnouncement_OtherClass(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM announcements WHERE").
		WithArgs(int64(1), int64(11)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAnnouncement(context.Background(), 11, 1)
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}

func TestUpdateAnnouncement(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	schedule := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE announcements SET title = $1, content = $2, tags = $3, schedule = $4, updated_at = now()")).
		WithArgs("Edited", `{"v":2}`, `[]`, schedule, int64(1), int64(10)).
		WillReturnRows(announcementRow(1, 10, false))

	_, err := repo.UpdateAnnouncement(context.Background(), models.Announcement{
		AnnouncementID: 1, ClassID: 10, Title: "Edited",
		Content: models.Document(`{"v":2}`), Schedule: &schedule,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAnnouncementPinned_NotFound(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE announcements SET pinned").WillReturnError(sql.ErrNoRows)

	_, err := repo.SetAnnouncementPinned(context.Background(), 10, 1, true)
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}

func TestDeleteAnnouncement(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrAnnouncementNotFound},
		{name: "db error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestCourseworkRepo(t)
			defer db.Close()

			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM announcements WHERE")).WithArgs(int64(1), int64(10))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeleteAnnouncement(context.Background(), 10, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAddComment_ReturnsAuthor(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO announcement_comments (announcement_id,user_id,body)")).
		WithArgs(int64(1), int64(7), "thanks").
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "announcement_id", "user_id", "body", "created_at", "name", "picture"}).
			AddRow(int64(5), int64(1), int64(7), "thanks", time.Now(), "Bob", ""))

	c, err := repo.AddComment(context.Background(), models.Comment{AnnouncementID: 1, UserID: 7, Text: "thanks"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.CommentID)
	assert.Equal(t, "Bob", c.AuthorName)
}

func TestAddComment_AnnouncementGone(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO announcement_comments").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.AddComment(context.Background(), models.Comment{AnnouncementID: 1, UserID: 7, Text: "x"})
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}

func TestListComments(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM announcement_comments c JOIN users u ON u.user_id = c.user_id WHERE c.announcement_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "announcement_id", "user_id", "body", "created_at", "name", "picture"}).
			AddRow(int64(5), int64(1), int64(7), "first", time.Now(), "Bob", "https://cdn/b.png").
			AddRow(int64(6), int64(1), int64(3), "second", time.Now(), "Ann", ""))

	comments, err := repo.ListComments(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "https://cdn/b.png", comments[0].AuthorPicture)
	assert.Equal(t, "second", comments[1].Text)
}

func TestCreateAssignment(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	points := int32(100)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO assignments (class_id,type,title,description,due,points)")).
		WithArgs(int64(10), "assignment", "Essay", nil, nil, int64(100)).
		WillReturnRows(assignmentRow(4, 10, int64(100)))

	a, err := repo.CreateAssignment(context.Background(), models.Assignment{
		ClassID: 10, Type: models.AssignmentTypeAssignment, Title: "Essay", Points: &points,
	})
	require.NoError(t, err)
	require.NotNil(t, a.Points)
	assert.Equal(t, int32(100), *a.Points)
	assert.Equal(t, models.AssignmentTypeAssignment, a.Type)
	assert.True(t, a.Description.Empty())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAssignments(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	rows := assignmentRow(5, 10, nil)
	rows.AddRow(int64(4), int64(10), "quiz", "Quiz", []byte(`{}`), time.Now(), int64(10), time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM assignments WHERE class_id = $1 ORDER BY created_at DESC")).
		WithArgs(int64(10)).
		WillReturnRows(rows)

	list, err := repo.ListAssignments(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].Points)
	assert.NotNil(t, list[1].Due)
	assert.Equal(t, models.AssignmentTypeQuiz, list[1].Type)
}

func TestFindAssignment_NotFound(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM assignments WHERE").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAssignment(context.Background(), 10, 4)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestUpdateAssignment_NotFound(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE assignments SET").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateAssignment(context.Background(), models.Assignment{AssignmentID: 4, ClassID: 10, Title: "x", Type: "quiz"})
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestDeleteAssignment_NotFound(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM assignments").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteAssignment(context.Background(), 10, 4), ErrAssignmentNotFound)
}

func TestSubmitWork(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO submissions (assignment_id,user_id) VALUES ($1,$2) ON CONFLICT (assignment_id, user_id) DO UPDATE SET submitted_at = now(), deleted_at = NULL")).
		WithArgs(int64(4), int64(7)).
		WillReturnRows(submissionRow(20, 4, 7, nil))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO submission_files (submission_id,filename,object_key,url) VALUES ($1,$2,$3,$4),($5,$6,$7,$8) ON CONFLICT (submission_id, object_key) DO NOTHING")).
		WithArgs(int64(20), "a.pdf", "submissions/4/7/a.pdf", "https://cdn/a.pdf",
			int64(20), "b.pdf", "submissions/4/7/b.pdf", "https://cdn/b.pdf").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("FROM submission_files WHERE submission_id IN ($1)")).
		WithArgs(int64(20)).
		WillReturnRows(sqlmock.NewRows(submissionFileColumns).
			AddRow(int64(1), int64(20), "a.pdf", "submissions/4/7/a.pdf", "https://cdn/a.pdf", time.Now()).
			AddRow(int64(2), int64(20), "b.pdf", "submissions/4/7/b.pdf", "https://cdn/b.pdf", time.Now()))

	s, err := repo.SubmitWork(context.Background(), 4, 7, []models.SubmissionFile{
		{Filename: "a.pdf", Key: "submissions/4/7/a.pdf", URL: "https://cdn/a.pdf"},
		{Filename: "b.pdf", Key: "submissions/4/7/b.pdf", URL: "https://cdn/b.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), s.SubmissionID)
	assert.Len(t, s.Files, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitWork_FileInsertFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO submissions").WillReturnRows(submissionRow(20, 4, 7, nil))
	mock.ExpectExec("INSERT INTO submission_files").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.SubmitWork(context.Background(), 4, 7, []models.SubmissionFile{{Filename: "a", Key: "k", URL: "u"}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindSubmission(t *testing.T) {
	t.Run("live submission with files", func(t *testing.T) {
		repo, mock, db := newTestCourseworkRepo(t)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM submissions WHERE assignment_id = $1 AND deleted_at IS NULL AND user_id = $2")).
			WithArgs(int64(4), int64(7)).
			WillReturnRows(submissionRow(20, 4, 7, 9.5))
		mock.ExpectQuery("FROM submission_files").
			WillReturnRows(sqlmock.NewRows(submissionFileColumns))

		s, err := repo.FindSubmission(context.Background(), 4, 7)
		require.NoError(t, err)
		require.NotNil(t, s.Grade)
		assert.Equal(t, 9.5, *s.Grade)
		assert.NotNil(t, s.Files)
		assert.Empty(t, s.Files)
	})

	t.Run("withdrawn or never handed in", func(t *testing.T) {
		repo, mock, db := newTestCourseworkRepo(t)
		defer db.Close()

		mock.ExpectQuery("FROM submissions WHERE").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindSubmission(context.Background(), 4, 7)
		assert.ErrorIs(t, err, ErrSubmissionNotFound)
	})
}

func TestSetSubmissionDone(t *testing.T) {
	tests := []struct {
		name    string
		done    bool
		pattern string
	}{
		{name: "done revives", done: true, pattern: "INSERT INTO submissions (assignment_id,user_id) VALUES ($1,$2) ON CONFLICT"},
		{name: "undone withdraws", done: false, pattern: "UPDATE submissions SET deleted_at = now() WHERE assignment_id = $1 AND deleted_at IS NULL AND user_id = $2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestCourseworkRepo(t)
			defer db.Close()

			mock.ExpectExec(regexp.QuoteMeta(tt.pattern)).
				WithArgs(int64(4), int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.SetSubmissionDone(context.Background(), 4, 7, tt.done))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListSubmissions_AttachesFilesPerSubmission(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM submissions s JOIN users u ON u.user_id = s.user_id WHERE s.assignment_id = $1 AND s.deleted_at IS NULL")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(append(append([]string{}, submissionColumns...), "name", "email")).
			AddRow(int64(20), int64(4), int64(7), time.Now(), false, nil, "", "Bob", "bob@example.com").
			AddRow(int64(21), int64(4), int64(8), time.Now(), true, 8.0, "good", "Eve", "eve@example.com"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM submission_files WHERE submission_id IN ($1,$2)")).
		WithArgs(int64(20), int64(21)).
		WillReturnRows(sqlmock.NewRows(submissionFileColumns).
			AddRow(int64(1), int64(21), "e.pdf", "submissions/4/8/e.pdf", "https://cdn/e.pdf", time.Now()))

	list, err := repo.ListSubmissions(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bob@example.com", list[0].StudentEmail)
	assert.Empty(t, list[0].Files)
	require.Len(t, list[1].Files, 1)
	assert.Equal(t, "e.pdf", list[1].Files[0].Filename)
	assert.Equal(t, "good", list[1].Feedback)
}

func TestListSubmissions_Empty(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM submissions s").WillReturnRows(sqlmock.NewRows(append(append([]string{}, submissionColumns...), "name", "email")))

	list, err := repo.ListSubmissions(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeSubmission(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO submissions (assignment_id,user_id,graded,grade,feedback) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (assignment_id, user_id) DO UPDATE SET graded = TRUE")).
		WithArgs(int64(4), int64(7), true, 87.5, "well done").
		WillReturnRows(submissionRow(20, 4, 7, 87.5))

	s, err := repo.GradeSubmission(context.Background(), models.Grade{AssignmentID: 4, StudentID: 7, Grade: 87.5, Feedback: "well done"})
	require.NoError(t, err)
	assert.True(t, s.Graded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeSubmission_AssignmentGone(t *testing.T) {
	repo, mock, db := newTestCourseworkRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO submissions").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.GradeSubmission(context.Background(), models.Grade{AssignmentID: 4, StudentID: 7, Grade: 1})
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}
