package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/objectstore"
	"github.com/MKhiriev/go-lms/internal/store"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/internal/validators"
	"github.com/MKhiriev/go-lms/models"
)

type courseworkService struct {
	classRepository      store.ClassRepository
	courseworkRepository store.CourseworkRepository
	objects              objectstore.Store
	ids                  *utils.UUIDGenerator
	validator            validators.Validator
	now                  func() time.Time

	logger *logger.Logger
}

func NewCourseworkService(
	classRepository store.ClassRepository,
	courseworkRepository store.CourseworkRepository,
	objects objectstore.Store,
	logger *logger.Logger,
) CourseworkService {
	if objects == nil {
		objects = objectstore.Disabled{}
	}

	return &courseworkService{
		classRepository:      classRepository,
		courseworkRepository: courseworkRepository,
		objects:              objects,
		ids:                  utils.NewUUIDGenerator(),
		validator:            validators.NewRequestValidator(),
		now:                  time.Now,
		logger:               logger,
	}
}

// roleIn returns the caller's role. Callers outside the class, including
// callers naming a class that does not exist, get ErrNotClassMember.
func (s *courseworkService) roleIn(ctx context.Context, userID, classID int64) (models.Role, error) {
	role, err := s.classRepository.GetRole(ctx, userID, classID)
	if errors.Is(err, store.ErrEnrollmentNotFound) {
		return "", ErrNotClassMember
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseworkService.roleIn").Msg("role lookup failed")
		return "", fmt.Errorf("role lookup failed: %w", err)
	}
	return role, nil
}

func (s *courseworkService) requireTeacher(ctx context.Context, userID, classID int64) error {
	role, err := s.roleIn(ctx, userID, classID)
	if errors.Is(err, ErrNotClassMember) || (err == nil && role != models.RoleTeacher) {
		return ErrNotClassTeacher
	}
	return err
}

func (s *courseworkService) requireStudent(ctx context.Context, userID, classID int64) error {
	role, err := s.roleIn(ctx, userID, classID)
	if errors.Is(err, ErrNotClassMember) || (err == nil && role != models.RoleStudent) {
		return ErrNotClassStudent
	}
	return err
}

// courseworkError maps repository lookups to service errors.
func courseworkError(ctx context.Context, funcName, msg string, err error) error {
	switch {
	case errors.Is(err, store.ErrClassNotFound):
		return ErrClassNotFound
	case errors.Is(err, store.ErrAnnouncementNotFound):
		return ErrAnnouncementNotFound
	case errors.Is(err, store.ErrAssignmentNotFound):
		return ErrAssignmentNotFound
	}
	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *courseworkService) GetClass(ctx context.Context, userID, classID int64) (models.ClassMembership, error) {
	role, err := s.roleIn(ctx, userID, classID)
	if err != nil {
		return models.ClassMembership{}, err
	}

	class, err := s.classRepository.FindClassByID(ctx, classID)
	if err != nil {
		return models.ClassMembership{}, classLookupError(ctx, err)
	}
	return models.ClassMembership{Class: class, Role: role}, nil
}

// ── announcements ─────────────────────────────────────────────────────────────

// ListAnnouncements hides announcements scheduled for later from students.
func (s *courseworkService) ListAnnouncements(ctx context.Context, userID, classID int64) ([]models.Announcement, error) {
	role, err := s.roleIn(ctx, userID, classID)
	if err != nil {
		return nil, err
	}

	announcements, err := s.courseworkRepository.ListAnnouncements(ctx, classID, role == models.RoleTeacher)
	if err != nil {
		return nil, courseworkError(ctx, "*courseworkService.ListAnnouncements", "error listing announcements", err)
	}
	return announcements, nil
}

func (s *courseworkService) CreateAnnouncement(ctx context.Context, userID, classID int64, req models.AnnouncementRequest) (models.Announcement, error) {
	if err := s.requireTeacher(ctx, userID, classID); err != nil {
		return models.Announcement{}, err
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Announcement{}, newValidationError(err)
	}

	created, err := s.courseworkRepository.CreateAnnouncement(ctx, announcementFromRequest(classID, req, models.Announcement{AuthorID: userID}))
	if err != nil {
		return models.Announcement{}, courseworkError(ctx, "*courseworkService.CreateAnnouncement", "announcement creation failed", err)
	}

	logger.FromContext(ctx).Info().Int64("class_id", classID).Int64("announcement_id", created.AnnouncementID).Msg("announcement posted")
	return created, nil
}

func (s *courseworkService) UpdateAnnouncement(ctx context.Context, userID, classID, announcementID int64, req models.AnnouncementRequest) (models.Announcement, error) {
	if err := s.requireTeacher(ctx, userID, classID); err != nil {
		return models.Announcement{}, err
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Announcement{}, newValidationError(err)
	}

	updated, err := s.courseworkRepository.UpdateAnnouncement(ctx,
		announcementFromRequest(classID, req, models.Announcement{AnnouncementID: announcementID}))
	if err != nil {
		return models.Announcement{}, courseworkError(ctx, "*courseworkService.UpdateAnnouncement", "announcement update failed", err)
	}
	return updated, nil
}

func announcementFromRequest(classID int64, req models.AnnouncementRequest, base models.Announcement) models.Announcement {
	tags := make(models.Tags, 0, len(req.Tags))
	for _, tag := range req.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	base.ClassID = classID
	base.Title = strings.TrimSpace(req.Title)
	base.Content = req.Content
	base.Tags = tags
	base.Schedule = req.Schedule
	return base
}

func (s *courseworkService) PinAnnouncement(ctx context.Context, userID, classID, announcementID int64, pinned bool) (models.Announcement, error) {
	if err := s.requireTeacher(ctx, userID, classID); err != nil {
		return models.Announcement{}, err
	}

	updated, err := s.courseworkRepository.SetAnnouncementPinned(ctx, classID, announcementID, pinned)
	if err != nil {
		return models.Announcement{}, courseworkError(ctx, "*courseworkService.PinAnnouncement", "announcement pin failed", err)
	}
	return updated, nil
}

func (s *courseworkService) DeleteAnnouncement(ctx context.Context, userID, classID, announcementID int64) error {
	if err := s.requireTeacher(ctx, userID, classID); err != nil {
		return err
	}

	if err := s.courseworkRepository.DeleteAnnouncement(ctx, classID, announcementID); err != nil {
		return courseworkError(ctx, "*courseworkService.DeleteAnnouncement", "announcement deletion failed", err)
	}
	return nil
}

// visibleAnnouncement loads an announcement the caller may read.
func (s *courseworkService) visibleAnnouncement(ctx context.Context, userID, classID, announcementID int64) (models.Announcement, error) {
	role, err := s.roleIn(ctx, userID, classID)
	if err != nil {
		return models.Announcement{}, err
	}

	announcement, err := s.courseworkRepository.FindAnnouncement(ctx, classID, announcementID)
	if err != nil {
		return models.Announcement{}, courseworkError(ctx, "*courseworkService.visibleAnnouncement", "announcement lookup failed", err)
	}
	if role != models.RoleTeacher && announcement.Schedule != nil && announcement.Schedule.After(s.now()) {
		return models.Announcement{}, ErrAnnouncementNotFound
	}
	return announcement, nil
}

func (s *courseworkService) ListComments(ctx context.Context, userID, classID, announcementID int64) ([]models.Comment, error) {
	if _, err := s.visibleAnnouncement(ctx, userID, classID, announcementID); err != nil {
		return nil, err
	}

	comments, err := s.courseworkRepository.ListComments(ctx, announcementID)
	if err != nil {
		return nil, courseworkError(ctx, "*courseworkService.ListComments", "error listing comments", err)
	}
	return comments, nil
}

func (s *courseworkService) AddComment(ctx context.Context, userID, classID, announcementID int64, req models.CommentRequest) (models.Comment, error) {
	if _, err := s.visibleAnnouncement(ctx, userID, classID, announcementID); err != nil {
		return models.Comment{}, err
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Comment{}, newValidationError(err)
	}

	comment, err := s.courseworkRepository.AddComment(ctx, models.Comment{
		AnnouncementID: announcementID,
		UserID:         userID,
		Text:           strings.TrimSpace(req.Text),
	})
	if err != nil {
		return models.Comment{}, courseworkError(ctx, "*courseworkService.AddComment", "comment creation failed", err)
	}
	return comment, nil
}

// ── assignments ───────────────────────────────────────────────────────────────

func (s *courseworkService) ListAssignments(ctx context.Context, userID, classID int64) ([]models.Assignment, error) {
	if _, err := s.roleIn(ctx, userID, classID); err != nil {
		return nil, err
	}

	assignments, err := s.courseworkRepository.ListAssignments(ctx, classID)
	if err != nil {
		return nil, courseworkError(ctx, "*courseworkService.ListAssignments", "error listing assignments", err)
	}
	return assignments, nil
}

func (s *courseworkService) GetAssignment(ctx context.Context, userID, classID, assignmentID int64) (models.Assignment, error) {
	if _, err := s.roleIn(ctx, userID, classID); err != nil {
		return models.Assignment{}, err
	}
	return s.findAssignment(ctx, classID, assignmentID)
}

func (s *courseworkService) findAssignment(ctx context.Context, classID, assignmentID int64) (models.Assignment, error) {
	assignment, err := s.courseworkRepository.FindAssignment(ctx, classID, assignmentID)
	if err != nil {
		return models.Assignment{}, courseworkError(ctx, "*courseworkService.findAssignment", "assignment lookup failed", err)
	}
	return assignment, nil
}

func (s *courseworkService) CreateAssignment(ctx context.Context, userID, classID int64, req models.AssignmentRequest) (models.Assignment, error) {
	if err := s.requireTeacher(ctx, userID, classID); err != nil {
		return models.Assignment{}, err
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Assignment{}, newValidationError(err)
	}

	created, err := s.courseworkRepository.CreateAssignment(ctx, assignmentFromRequest(classID, 0, req))
	if err != nil {
		return models.Assignment{}, courseworkError(ctx, "*courseworkService.CreateAssignment", "assignment creation failed", err)
	}

	logger.FromContext(ctx).Info().Int64("class_id", classID).Int64("assignment_id", created.AssignmentID).Msg("assignment created")
	return created, nil
}

func (s *courseworkService) UpdateAssignment(ctx context.Context, userID, classID, assignmentID int64, req models.AssignmentRequest) (models.Assignment, error) {
	if err := s.requireTeacher(ctx, userID, classID); err != nil {
		return models.Assignment{}, err
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Assignment{}, newValidationError(err)
	}

	updated, err := s.courseworkRepository.UpdateAssignment(ctx, assignmentFromRequest(classID, assignmentID, req))
	if err != nil {
		return models.Assignment{}, courseworkError(ctx, "*courseworkService.UpdateAssignment", "assignment update failed", err)
	}
	return updated, nil
}

func assignmentFromRequest(classID, assignmentID int64, req models.AssignmentRequest) models.Assignment {
	kind := req.Type
	if kind == "" {
		kind = models.AssignmentTypeAssignment
	}
	return models.Assignment{
		AssignmentID: assignmentID,
		ClassID:      classID,
		Type:         kind,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Due:          req.Due,
		Points:       req.Points,
	}
}

func (s *courseworkService) DeleteAssignment(ctx context.Context, userID, classID, assignmentID int64) error {
	if err := s.requireTeacher(ctx, userID, classID); err != nil {
		return err
	}

	if err := s.courseworkRepository.DeleteAssignment(ctx, classID, assignmentID); err != nil {
		return courseworkError(ctx, "*courseworkService.DeleteAssignment", "assignment deletion failed", err)
	}
	return nil
}

// ── submissions ───────────────────────────────────────────────────────────────

// GetSubmission returns the caller's own hand-in; Done is false while nothing
// is handed in or the work was withdrawn.
func (s *courseworkService) GetSubmission(ctx context.Context, userID, classID, assignmentID int64) (models.SubmissionStatusResponse, error) {
	if err := s.requireStudent(ctx, userID, classID); err != nil {
		return models.SubmissionStatusResponse{}, err
	}
	if _, err := s.findAssignment(ctx, classID, assignmentID); err != nil {
		return models.SubmissionStatusResponse{}, err
	}

	submission, err := s.courseworkRepository.FindSubmission(ctx, assignmentID, userID)
	if errors.Is(err, store.ErrSubmissionNotFound) {
		return models.SubmissionStatusResponse{}, nil
	}
	if err != nil {
		return models.SubmissionStatusResponse{}, courseworkError(ctx, "*courseworkService.GetSubmission", "submission lookup failed", err)
	}
	return models.SubmissionStatusResponse{Submission: &submission, Done: true}, nil
}

// CreateSubmissionUpload returns a presigned URL for one file. The file only
// becomes part of the submission through a later Submit call with the key.
func (s *courseworkService) CreateSubmissionUpload(ctx context.Context, userID, classID, assignmentID int64, req models.SubmissionUploadRequest) (models.UploadTarget, error) {
	if err := s.requireStudent(ctx, userID, classID); err != nil {
		return models.UploadTarget{}, err
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.UploadTarget{}, newValidationError(err)
	}
	if _, err := s.findAssignment(ctx, classID, assignmentID); err != nil {
		return models.UploadTarget{}, err
	}

	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	key := objectstore.SubmissionKey(s.ids, assignmentID, userID, strings.TrimSpace(req.Filename), contentType)
	target, err := s.objects.PresignUpload(ctx, key, contentType)
	if errors.Is(err, objectstore.ErrNotConfigured) {
		return models.UploadTarget{}, ErrUploadsDisabled
	}
	if err != nil {
		return models.UploadTarget{}, fmt.Errorf("error creating upload: %w", err)
	}
	return target, nil
}

// Submit hands the work in with the uploaded files. Every key must have been
// issued to the caller for this assignment.
func (s *courseworkService) Submit(ctx context.Context, userID, classID, assignmentID int64, req models.SubmitRequest) (models.Submission, error) {
	if err := s.requireStudent(ctx, userID, classID); err != nil {
		return models.Submission{}, err
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Submission{}, newValidationError(err)
	}
	if _, err := s.findAssignment(ctx, classID, assignmentID); err != nil {
		return models.Submission{}, err
	}

	files := make([]models.SubmissionFile, 0, len(req.Files))
	for _, f := range req.Files {
		if err := objectstore.CheckSubmissionKey(assignmentID, userID, f.Key); err != nil {
			if errors.Is(err, objectstore.ErrForeignObject) {
				return models.Submission{}, ErrForeignUpload
			}
			return models.Submission{}, newValidationError(err)
		}

		url := s.objects.PublicURL(f.Key)
		if url == "" {
			return models.Submission{}, ErrUploadsDisabled
		}
		files = append(files, models.SubmissionFile{Filename: strings.TrimSpace(f.Filename), Key: f.Key, URL: url})
	}

	submission, err := s.courseworkRepository.SubmitWork(ctx, assignmentID, userID, files)
	if err != nil {
		return models.Submission{}, courseworkError(ctx, "*courseworkService.Submit", "submission failed", err)
	}

	logger.FromContext(ctx).Info().Int64("assignment_id", assignmentID).Int("files", len(files)).Msg("work handed in")
	return submission, nil
}

func (s *courseworkService) MarkDone(ctx context.Context, userID, classID, assignmentID int64, done bool) error {
	if err := s.requireStudent(ctx, userID, classID); err != nil {
		return err
	}
	if _, err := s.findAssignment(ctx, classID, assignmentID); err != nil {
		return err
	}

	if err := s.courseworkRepository.SetSubmissionDone(ctx, assignmentID, userID, done); err != nil {
		return courseworkError(ctx, "*courseworkService.MarkDone", "submission update failed", err)
	}
	return nil
}

func (s *courseworkService) ListSubmissions(ctx context.Context, userID, classID, assignmentID int64) ([]models.Submission, error) {
	if err := s.requireTeacher(ctx, userID, classID); err != nil {
		return nil, err
	}
	if _, err := s.findAssignment(ctx, classID, assignmentID); err != nil {
		return nil, err
	}

	submissions, err := s.courseworkRepository.ListSubmissions(ctx, assignmentID)
	if err != nil {
		return nil, courseworkError(ctx, "*courseworkService.ListSubmissions", "error listing submissions", err)
	}
	return submissions, nil
}

// Grade records a teacher's grade for a student of the class. The grade may
// not exceed the assignment's points when those are set.
func (s *courseworkService) Grade(ctx context.Context, userID, classID, assignmentID int64, req models.GradeRequest) (models.Submission, error) {
	log := logger.FromContext(ctx)

	if err := s.requireTeacher(ctx, userID, classID); err != nil {
		return models.Submission{}, err
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Submission{}, newValidationError(err)
	}

	assignment, err := s.findAssignment(ctx, classID, assignmentID)
	if err != nil {
		return models.Submission{}, err
	}
	if assignment.Points != nil && *req.Grade > float64(*assignment.Points) {
		return models.Submission{}, newValidationError(validators.ErrGradeAbovePoints)
	}

	role, err := s.classRepository.GetRole(ctx, req.StudentID, classID)
	if errors.Is(err, store.ErrEnrollmentNotFound) || (err == nil && role != models.RoleStudent) {
		return models.Submission{}, ErrStudentNotEnrolled
	}
	if err != nil {
		log.Err(err).Str("func", "*courseworkService.Grade").Msg("role lookup failed")
		return models.Submission{}, fmt.Errorf("role lookup failed: %w", err)
	}

	graded, err := s.courseworkRepository.GradeSubmission(ctx, models.Grade{
		AssignmentID: assignmentID,
		StudentID:    req.StudentID,
		Grade:        *req.Grade,
		Feedback:     strings.TrimSpace(req.Feedback),
	})
	if err != nil {
		return models.Submission{}, courseworkError(ctx, "*courseworkService.Grade", "grading failed", err)
	}

	log.Info().Int64("assignment_id", assignmentID).Int64("student_id", req.StudentID).Msg("submission graded")
	return graded, nil
}
