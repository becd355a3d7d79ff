package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
	"github.com/jackc/pgerrcode"
)

type courseworkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseworkRepository constructs a [CourseworkRepository] over the
// announcement, assignment and submission tables.
func NewCourseworkRepository(db *DB, logger *logger.Logger) CourseworkRepository {
	logger.Debug().Msg("creating coursework repository")
	return &courseworkRepository{
		db:     db,
		logger: logger,
	}
}

func scanAnnouncement(row rowScanner) (models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(
		&a.AnnouncementID,
		&a.ClassID,
		&a.AuthorID,
		&a.Title,
		&a.Content,
		&a.Tags,
		&a.Schedule,
		&a.Pinned,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func scanComment(row rowScanner) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(
		&c.CommentID,
		&c.AnnouncementID,
		&c.UserID,
		&c.Text,
		&c.CreatedAt,
		&c.AuthorName,
		&c.AuthorPicture,
	)
	return c, err
}

func scanAssignment(row rowScanner) (models.Assignment, error) {
	var a models.Assignment
	var kind string
	err := row.Scan(
		&a.AssignmentID,
		&a.ClassID,
		&kind,
		&a.Title,
		&a.Description,
		&a.Due,
		&a.Points,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	a.Type = models.AssignmentType(kind)
	return a, err
}

func scanSubmission(row rowScanner, extra ...any) (models.Submission, error) {
	var s models.Submission
	dest := append([]any{
		&s.SubmissionID,
		&s.AssignmentID,
		&s.UserID,
		&s.SubmittedAt,
		&s.Graded,
		&s.Grade,
		&s.Feedback,
	}, extra...)
	err := row.Scan(dest...)
	s.Files = make([]models.SubmissionFile, 0)
	return s, err
}

// ── announcements ─────────────────────────────────────────────────────────────

func (r *courseworkRepository) CreateAnnouncement(ctx context.Context, announcement models.Announcement) (models.Announcement, error) {
	query, args, err := buildInsertAnnouncementQuery(announcement)
	if err != nil {
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Announcement{}, ErrClassNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*courseworkRepository.CreateAnnouncement").Msg("error inserting announcement")
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return created, nil
}

func (r *courseworkRepository) ListAnnouncements(ctx context.Context, classID int64, includeScheduled bool) ([]models.Announcement, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAnnouncementsQuery(classID, includeScheduled)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseworkRepository.ListAnnouncements").Msg("error selecting announcements")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	announcements := make([]models.Announcement, 0)
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			log.Err(err).Str("func", "*courseworkRepository.ListAnnouncements").Msg("error scanning announcement")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return announcements, nil
}

func (r *courseworkRepository) FindAnnouncement(ctx context.Context, classID, announcementID int64) (models.Announcement, error) {
	query, args, err := buildSelectAnnouncementQuery(classID, announcementID)
	if err != nil {
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Announcement
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanAnnouncement(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	return r.announcementResult(ctx, "*courseworkRepository.FindAnnouncement", found, err)
}

func (r *courseworkRepository) UpdateAnnouncement(ctx context.Context, announcement models.Announcement) (models.Announcement, error) {
	query, args, err := buildUpdateAnnouncementQuery(announcement)
	if err != nil {
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, args...))
	return r.announcementResult(ctx, "*courseworkRepository.UpdateAnnouncement", updated, err)
}

func (r *courseworkRepository) SetAnnouncementPinned(ctx context.Context, classID, announcementID int64, pinned bool) (models.Announcement, error) {
	query, args, err := buildSetAnnouncementPinnedQuery(classID, announcementID, pinned)
	if err != nil {
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, args...))
	return r.announcementResult(ctx, "*courseworkRepository.SetAnnouncementPinned", updated, err)
}

func (r *courseworkRepository) announcementResult(ctx context.Context, funcName string, a models.Announcement, err error) (models.Announcement, error) {
	if err == nil {
		return a, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.Announcement{}, ErrAnnouncementNotFound
	}
	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error reading announcement")
	return models.Announcement{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (r *courseworkRepository) DeleteAnnouncement(ctx context.Context, classID, announcementID int64) error {
	query, args, err := buildDeleteAnnouncementQuery(classID, announcementID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*courseworkRepository.DeleteAnnouncement", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}

func (r *courseworkRepository) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	query, args, err := buildInsertCommentQuery(comment)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Comment{}, ErrAnnouncementNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*courseworkRepository.AddComment").Msg("error inserting comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return created, nil
}

func (r *courseworkRepository) ListComments(ctx context.Context, announcementID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentsQuery(announcementID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseworkRepository.ListComments").Msg("error selecting comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			log.Err(err).Str("func", "*courseworkRepository.ListComments").Msg("error scanning comment")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// ── assignments ───────────────────────────────────────────────────────────────

func (r *courseworkRepository) CreateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	query, args, err := buildInsertAssignmentQuery(assignment)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAssignment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Assignment{}, ErrClassNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*courseworkRepository.CreateAssignment").Msg("error inserting assignment")
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return created, nil
}

func (r *courseworkRepository) ListAssignments(ctx context.Context, classID int64) ([]models.Assignment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAssignmentsQuery(classID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseworkRepository.ListAssignments").Msg("error selecting assignments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assignments := make([]models.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			log.Err(err).Str("func", "*courseworkRepository.ListAssignments").Msg("error scanning assignment")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assignments, nil
}

func (r *courseworkRepository) FindAssignment(ctx context.Context, classID, assignmentID int64) (models.Assignment, error) {
	query, args, err := buildSelectAssignmentQuery(classID, assignmentID)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Assignment
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanAssignment(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	return r.assignmentResult(ctx, "*courseworkRepository.FindAssignment", found, err)
}

func (r *courseworkRepository) UpdateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	query, args, err := buildUpdateAssignmentQuery(assignment)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAssignment(r.db.QueryRowContext(ctx, query, args...))
	return r.assignmentResult(ctx, "*courseworkRepository.UpdateAssignment", updated, err)
}

func (r *courseworkRepository) assignmentResult(ctx context.Context, funcName string, a models.Assignment, err error) (models.Assignment, error) {
	if err == nil {
		return a, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.Assignment{}, ErrAssignmentNotFound
	}
	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error reading assignment")
	return models.Assignment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (r *courseworkRepository) DeleteAssignment(ctx context.Context, classID, assignmentID int64) error {
	query, args, err := buildDeleteAssignmentQuery(classID, assignmentID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*courseworkRepository.DeleteAssignment", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// ── submissions ───────────────────────────────────────────────────────────────

func (r *courseworkRepository) SubmitWork(ctx context.Context, assignmentID, userID int64, files []models.SubmissionFile) (models.Submission, error) {
	log := logger.FromContext(ctx)

	upsert, upsertArgs, err := buildUpsertSubmissionQuery(assignmentID, userID)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*courseworkRepository.SubmitWork").Msg("error beginning transaction")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	submission, err := scanSubmission(tx.QueryRowContext(ctx, upsert, upsertArgs...))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Submission{}, ErrAssignmentNotFound
		}
		log.Err(err).Str("func", "*courseworkRepository.SubmitWork").Msg("error upserting submission")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(files) > 0 {
		insertFiles, fileArgs, err := buildInsertSubmissionFilesQuery(submission.SubmissionID, files)
		if err != nil {
			return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, insertFiles, fileArgs...); err != nil {
			log.Err(err).Str("func", "*courseworkRepository.SubmitWork").Msg("error inserting submission files")
			return models.Submission{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*courseworkRepository.SubmitWork").Msg("error committing transaction")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	withFiles, err := r.attachFiles(ctx, []models.Submission{submission})
	if err != nil {
		return models.Submission{}, err
	}
	return withFiles[0], nil
}

func (r *courseworkRepository) FindSubmission(ctx context.Context, assignmentID, userID int64) (models.Submission, error) {
	query, args, err := buildSelectSubmissionQuery(assignmentID, userID)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Submission
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanSubmission(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Submission{}, ErrSubmissionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*courseworkRepository.FindSubmission").Msg("error selecting submission")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	withFiles, err := r.attachFiles(ctx, []models.Submission{found})
	if err != nil {
		return models.Submission{}, err
	}
	return withFiles[0], nil
}

func (r *courseworkRepository) SetSubmissionDone(ctx context.Context, assignmentID, userID int64, done bool) error {
	build := buildWithdrawSubmissionQuery
	if done {
		build = buildUpsertSubmissionQuery
	}

	query, args, err := build(assignmentID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrAssignmentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*courseworkRepository.SetSubmissionDone").Msg("error updating submission")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *courseworkRepository) ListSubmissions(ctx context.Context, assignmentID int64) ([]models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSubmissionsQuery(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseworkRepository.ListSubmissions").Msg("error selecting submissions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	submissions := make([]models.Submission, 0)
	for rows.Next() {
		var name, email string
		s, err := scanSubmission(rows, &name, &email)
		if err != nil {
			log.Err(err).Str("func", "*courseworkRepository.ListSubmissions").Msg("error scanning submission")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		s.StudentName, s.StudentEmail = name, email
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return r.attachFiles(ctx, submissions)
}

func (r *courseworkRepository) GradeSubmission(ctx context.Context, grade models.Grade) (models.Submission, error) {
	query, args, err := buildGradeSubmissionQuery(grade)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	graded, err := scanSubmission(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Submission{}, ErrAssignmentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*courseworkRepository.GradeSubmission").Msg("error grading submission")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return graded, nil
}

// attachFiles loads the files of all submissions with one query.
func (r *courseworkRepository) attachFiles(ctx context.Context, submissions []models.Submission) ([]models.Submission, error) {
	if len(submissions) == 0 {
		return submissions, nil
	}
	log := logger.FromContext(ctx)

	ids := make([]int64, len(submissions))
	index := make(map[int64]int, len(submissions))
	for i, s := range submissions {
		ids[i] = s.SubmissionID
		index[s.SubmissionID] = i
	}

	query, args, err := buildSelectSubmissionFilesQuery(ids...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseworkRepository.attachFiles").Msg("error selecting submission files")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var f models.SubmissionFile
		if err := rows.Scan(&f.FileID, &f.SubmissionID, &f.Filename, &f.Key, &f.URL, &f.CreatedAt); err != nil {
			log.Err(err).Str("func", "*courseworkRepository.attachFiles").Msg("error scanning submission file")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[f.SubmissionID]; ok {
			submissions[i].Files = append(submissions[i].Files, f)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return submissions, nil
}

func (r *courseworkRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}
