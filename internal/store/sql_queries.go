package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-lms/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{
		"user_id",
		"email",
		"password",
		"metadata",
		"verified",
		"verify_token",
		"reset_token",
		"reset_expires",
		"created_at",
		"updated_at",
	}

	classColumns = []string{
		"class_id",
		"code",
		"name",
		"section",
		"subject",
		"room",
		"owner_id",
		"created_at",
	}

	announcementColumns = []string{
		"announcement_id",
		"class_id",
		"author_id",
		"title",
		"content",
		"tags",
		"schedule",
		"pinned",
		"created_at",
		"updated_at",
	}

	assignmentColumns = []string{
		"assignment_id",
		"class_id",
		"type",
		"title",
		"description",
		"due",
		"points",
		"created_at",
		"updated_at",
	}

	submissionColumns = []string{
		"submission_id",
		"assignment_id",
		"user_id",
		"submitted_at",
		"graded",
		"grade",
		"feedback",
	}

	submissionFileColumns = []string{
		"file_id",
		"submission_id",
		"filename",
		"object_key",
		"url",
		"created_at",
	}
)

func returningUser() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func returningClass() string {
	return "RETURNING " + strings.Join(classColumns, ", ")
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func prefixed(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + "." + c
	}
	return out
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("email", "password", "metadata", "verified", "verify_token").
		Values(user.Email, user.PasswordHash, user.Profile, user.Verified, user.VerifyTokenHash).
		Suffix(returningUser()).
		ToSql()
}

// buildInsertPlaceholderQuery returns no row when the email already exists.
func buildInsertPlaceholderQuery(email string) (string, []any, error) {
	return psql.Insert("users").
		Columns("email", "password", "metadata", "verified").
		Values(email, models.InvitationPasswordSentinel, models.Profile{}, false).
		Suffix("ON CONFLICT DO NOTHING " + returningUser()).
		ToSql()
}

func buildClaimPlaceholderQuery(user models.User) (string, []any, error) {
	return psql.Update("users").
		Set("password", user.PasswordHash).
		Set("metadata", sq.Expr("metadata || ?::jsonb", user.Profile)).
		Set("verify_token", user.VerifyTokenHash).
		Set("updated_at", sq.Expr("now()")).
		Where("lower(email) = lower(?)", user.Email).
		Where("verified = FALSE").
		Where(sq.Eq{"password": models.InvitationPasswordSentinel}).
		Suffix(returningUser()).
		ToSql()
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where("lower(email) = lower(?)", email).
		ToSql()
}

func buildSelectUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSetVerifyTokenQuery(userID int64, tokenHash string) (string, []any, error) {
	return psql.Update("users").
		Set("verify_token", tokenHash).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Where("verified = FALSE").
		ToSql()
}

// buildConsumeVerifyTokenQuery is a single conditional UPDATE: of several
// concurrent requests with the same token exactly one affects a row.
func buildConsumeVerifyTokenQuery(tokenHash string) (string, []any, error) {
	return psql.Update("users").
		Set("verified", true).
		Set("verify_token", nil).
		Set("updated_at", sq.Expr("now()")).
		Where("verify_token = ?", tokenHash).
		Where("verified = FALSE").
		ToSql()
}

// buildSetResetTokenQuery computes the expiry on the database clock, the same
// clock buildConsumeResetTokenQuery compares it against.
func buildSetResetTokenQuery(userID int64, tokenHash string, ttl time.Duration) (string, []any, error) {
	return psql.Update("users").
		Set("reset_token", tokenHash).
		Set("reset_expires", sq.Expr("now() + make_interval(secs => ?)", ttl.Seconds())).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildConsumeResetTokenQuery checks the expiry inside the same statement
// that replaces the password, so a token cannot be used after it expired or
// twice.
func buildConsumeResetTokenQuery(tokenHash, passwordHash string) (string, []any, error) {
	return psql.Update("users").
		Set("password", passwordHash).
		Set("reset_token", nil).
		Set("reset_expires", nil).
		Set("updated_at", sq.Expr("now()")).
		Where("reset_token = ?", tokenHash).
		Where("reset_expires > now()").
		ToSql()
}

func buildMergeProfileQuery(userID int64, patch models.Profile) (string, []any, error) {
	return psql.Update("users").
		Set("metadata", sq.Expr("metadata || ?::jsonb", patch)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returningUser()).
		ToSql()
}

// buildLinkExternalAccountQuery marks the account as verified by the identity
// provider. A password set before the email was ever confirmed is replaced by
// the federated sentinel; SET expressions see the old row, so "verified"
// below is the value before this statement. The picture is only filled in
// when none is stored.
func buildLinkExternalAccountQuery(userID int64, picture string) (string, []any, error) {
	return psql.Update("users").
		Set("password", sq.Expr("CASE WHEN verified THEN password ELSE ? END", models.FederatedPasswordSentinel)).
		Set("verified", true).
		Set("verify_token", nil).
		Set("metadata", sq.Expr(
			"CASE WHEN COALESCE(metadata->>'picture', '') = '' AND ?::text <> '' "+
				"THEN metadata || jsonb_build_object('picture', ?::text) ELSE metadata END",
			picture, picture,
		)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returningUser()).
		ToSql()
}

func buildClearExpiredResetTokensQuery() (string, []any, error) {
	return psql.Update("users").
		Set("reset_token", nil).
		Set("reset_expires", nil).
		Where("reset_expires <= now()").
		ToSql()
}

// ── classes ───────────────────────────────────────────────────────────────────

func buildInsertClassQuery(class models.Class) (string, []any, error) {
	return psql.Insert("classes").
		Columns("code", "name", "section", "subject", "room", "owner_id").
		Values(class.Code, class.Name, class.Section, class.Subject, class.Room, class.OwnerID).
		Suffix(returningClass()).
		ToSql()
}

// buildInsertEnrollmentQuery keeps an existing membership (and its role) intact.
func buildInsertEnrollmentQuery(enrollment models.Enrollment) (string, []any, error) {
	return psql.Insert("class_enrollments").
		Columns("user_id", "class_id", "role").
		Values(enrollment.UserID, enrollment.ClassID, string(enrollment.Role)).
		Suffix("ON CONFLICT (user_id, class_id) DO NOTHING").
		ToSql()
}

func buildSelectClassByIDQuery(classID int64) (string, []any, error) {
	return psql.Select(classColumns...).
		From("classes").
		Where(sq.Eq{"class_id": classID}).
		ToSql()
}

func buildSelectClassByCodeQuery(code string) (string, []any, error) {
	return psql.Select(classColumns...).
		From("classes").
		Where(sq.Eq{"code": strings.ToUpper(code)}).
		ToSql()
}

func buildSelectClassesForUserQuery(userID int64) (string, []any, error) {
	return psql.Select(append(prefixed("c", classColumns), "e.role")...).
		From("classes c").
		Join("class_enrollments e ON e.class_id = c.class_id").
		Where(sq.Eq{"e.user_id": userID}).
		OrderBy("c.created_at DESC", "c.class_id DESC").
		ToSql()
}

func buildSelectRoleQuery(userID, classID int64) (string, []any, error) {
	return psql.Select("role").
		From("class_enrollments").
		Where(sq.Eq{"user_id": userID, "class_id": classID}).
		ToSql()
}

// ── announcements ─────────────────────────────────────────────────────────────

func buildInsertAnnouncementQuery(a models.Announcement) (string, []any, error) {
	return psql.Insert("announcements").
		Columns("class_id", "author_id", "title", "content", "tags", "schedule").
		Values(a.ClassID, a.AuthorID, a.Title, a.Content, a.Tags, a.Schedule).
		Suffix(returning(announcementColumns)).
		ToSql()
}

func buildSelectAnnouncementsQuery(classID int64, includeScheduled bool) (string, []any, error) {
	query := psql.Select(announcementColumns...).
		From("announcements").
		Where(sq.Eq{"class_id": classID}).
		OrderBy("pinned DESC", "created_at DESC", "announcement_id DESC")
	if !includeScheduled {
		query = query.Where("(schedule IS NULL OR schedule <= now())")
	}
	return query.ToSql()
}

func buildSelectAnnouncementQuery(classID, announcementID int64) (string, []any, error) {
	return psql.Select(announcementColumns...).
		From("announcements").
		Where(sq.Eq{"class_id": classID, "announcement_id": announcementID}).
		ToSql()
}

func buildUpdateAnnouncementQuery(a models.Announcement) (string, []any, error) {
	return psql.Update("announcements").
		Set("title", a.Title).
		Set("content", a.Content).
		Set("tags", a.Tags).
		Set("schedule", a.Schedule).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"class_id": a.ClassID, "announcement_id": a.AnnouncementID}).
		Suffix(returning(announcementColumns)).
		ToSql()
}

func buildSetAnnouncementPinnedQuery(classID, announcementID int64, pinned bool) (string, []any, error) {
	return psql.Update("announcements").
		Set("pinned", pinned).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"class_id": classID, "announcement_id": announcementID}).
		Suffix(returning(announcementColumns)).
		ToSql()
}

func buildDeleteAnnouncementQuery(classID, announcementID int64) (string, []any, error) {
	return psql.Delete("announcements").
		Where(sq.Eq{"class_id": classID, "announcement_id": announcementID}).
		ToSql()
}

// buildInsertCommentQuery returns the new comment together with its author's
// display name and picture.
func buildInsertCommentQuery(c models.Comment) (string, []any, error) {
	return psql.Insert("announcement_comments").
		Columns("announcement_id", "user_id", "body").
		Values(c.AnnouncementID, c.UserID, c.Text).
		Suffix("RETURNING comment_id, announcement_id, user_id, body, created_at, " +
			"(SELECT COALESCE(u.metadata->>'name', '') FROM users u WHERE u.user_id = announcement_comments.user_id), " +
			"(SELECT COALESCE(u.metadata->>'picture', '') FROM users u WHERE u.user_id = announcement_comments.user_id)").
		ToSql()
}

func buildSelectCommentsQuery(announcementID int64) (string, []any, error) {
	return psql.Select(
		"c.comment_id", "c.announcement_id", "c.user_id", "c.body", "c.created_at",
		"COALESCE(u.metadata->>'name', '')", "COALESCE(u.metadata->>'picture', '')",
	).
		From("announcement_comments c").
		Join("users u ON u.user_id = c.user_id").
		Where(sq.Eq{"c.announcement_id": announcementID}).
		OrderBy("c.created_at", "c.comment_id").
		ToSql()
}

// ── assignments ───────────────────────────────────────────────────────────────

func buildInsertAssignmentQuery(a models.Assignment) (string, []any, error) {
	return psql.Insert("assignments").
		Columns("class_id", "type", "title", "description", "due", "points").
		Values(a.ClassID, string(a.Type), a.Title, a.Description, a.Due, a.Points).
		Suffix(returning(assignmentColumns)).
		ToSql()
}

func buildSelectAssignmentsQuery(classID int64) (string, []any, error) {
	return psql.Select(assignmentColumns...).
		From("assignments").
		Where(sq.Eq{"class_id": classID}).
		OrderBy("created_at DESC", "assignment_id DESC").
		ToSql()
}

func buildSelectAssignmentQuery(classID, assignmentID int64) (string, []any, error) {
	return psql.Select(assignmentColumns...).
		From("assignments").
		Where(sq.Eq{"class_id": classID, "assignment_id": assignmentID}).
		ToSql()
}

func buildUpdateAssignmentQuery(a models.Assignment) (string, []any, error) {
	return psql.Update("assignments").
		Set("type", string(a.Type)).
		Set("title", a.Title).
		Set("description", a.Description).
		Set("due", a.Due).
		Set("points", a.Points).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"class_id": a.ClassID, "assignment_id": a.AssignmentID}).
		Suffix(returning(assignmentColumns)).
		ToSql()
}

func buildDeleteAssignmentQuery(classID, assignmentID int64) (string, []any, error) {
	return psql.Delete("assignments").
		Where(sq.Eq{"class_id": classID, "assignment_id": assignmentID}).
		ToSql()
}

// ── submissions ───────────────────────────────────────────────────────────────

// buildUpsertSubmissionQuery hands the work in again: a withdrawn submission
// is revived and its timestamp refreshed, grade and files are kept.
func buildUpsertSubmissionQuery(assignmentID, userID int64) (string, []any, error) {
	return psql.Insert("submissions").
		Columns("assignment_id", "user_id").
		Values(assignmentID, userID).
		Suffix("ON CONFLICT (assignment_id, user_id) DO UPDATE SET submitted_at = now(), deleted_at = NULL " +
			returning(submissionColumns)).
		ToSql()
}

func buildInsertSubmissionFilesQuery(submissionID int64, files []models.SubmissionFile) (string, []any, error) {
	query := psql.Insert("submission_files").
		Columns("submission_id", "filename", "object_key", "url")
	for _, f := range files {
		query = query.Values(submissionID, f.Filename, f.Key, f.URL)
	}
	return query.
		Suffix("ON CONFLICT (submission_id, object_key) DO NOTHING").
		ToSql()
}

func buildSelectSubmissionQuery(assignmentID, userID int64) (string, []any, error) {
	return psql.Select(submissionColumns...).
		From("submissions").
		Where(sq.Eq{"assignment_id": assignmentID, "user_id": userID, "deleted_at": nil}).
		ToSql()
}

func buildSelectSubmissionFilesQuery(submissionIDs ...int64) (string, []any, error) {
	return psql.Select(submissionFileColumns...).
		From("submission_files").
		Where(sq.Eq{"submission_id": submissionIDs}).
		OrderBy("created_at", "file_id").
		ToSql()
}

func buildWithdrawSubmissionQuery(assignmentID, userID int64) (string, []any, error) {
	return psql.Update("submissions").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"assignment_id": assignmentID, "user_id": userID, "deleted_at": nil}).
		ToSql()
}

func buildSelectSubmissionsQuery(assignmentID int64) (string, []any, error) {
	return psql.Select(append(prefixed("s", submissionColumns),
		"COALESCE(u.metadata->>'name', '')", "u.email")...).
		From("submissions s").
		Join("users u ON u.user_id = s.user_id").
		Where(sq.Eq{"s.assignment_id": assignmentID, "s.deleted_at": nil}).
		OrderBy("s.submitted_at", "s.submission_id").
		ToSql()
}

// buildGradeSubmissionQuery records the grade even when nothing was handed
// in; an existing submission keeps its hand-in state.
func buildGradeSubmissionQuery(grade models.Grade) (string, []any, error) {
	return psql.Insert("submissions").
		Columns("assignment_id", "user_id", "graded", "grade", "feedback").
		Values(grade.AssignmentID, grade.StudentID, true, grade.Grade, grade.Feedback).
		Suffix("ON CONFLICT (assignment_id, user_id) DO UPDATE SET " +
			"graded = TRUE, grade = EXCLUDED.grade, feedback = EXCLUDED.feedback " +
			returning(submissionColumns)).
		ToSql()
}
