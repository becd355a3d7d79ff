package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/mailer"
	"github.com/MKhiriev/go-lms/internal/store"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/internal/validators"
	"github.com/MKhiriev/go-lms/models"
)

const (
	joinCodeLength = 8
	// attempts at finding an unused join code before giving up
	joinCodeAttempts = 5
)

type classService struct {
	classRepository store.ClassRepository
	userRepository  store.UserRepository
	tokens          TokenService
	mailer          mailer.Mailer
	validator       validators.Validator
	newCode         func(n int) (string, error)

	logger *logger.Logger
}

func NewClassService(
	classRepository store.ClassRepository,
	userRepository store.UserRepository,
	tokens TokenService,
	mailer mailer.Mailer,
	logger *logger.Logger,
) ClassService {
	return &classService{
		classRepository: classRepository,
		userRepository:  userRepository,
		tokens:          tokens,
		mailer:          mailer,
		validator:       validators.NewRequestValidator(),
		newCode:         utils.RandomCode,
		logger:          logger,
	}
}

// CreateClass stores the class under a fresh random join code and enrolls the
// owner as its teacher.
func (s *classService) CreateClass(ctx context.Context, ownerID int64, req models.CreateClassRequest) (models.Class, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Class{}, newValidationError(err)
	}

	class := models.Class{
		Name:    strings.TrimSpace(req.Name),
		Section: strings.TrimSpace(req.Section),
		Subject: strings.TrimSpace(req.Subject),
		Room:    strings.TrimSpace(req.Room),
		OwnerID: ownerID,
	}

	for attempt := 0; attempt < joinCodeAttempts; attempt++ {
		code, err := s.newCode(joinCodeLength)
		if err != nil {
			return models.Class{}, fmt.Errorf("error generating join code: %w", err)
		}
		class.Code = code

		created, err := s.classRepository.CreateClass(ctx, class)
		if errors.Is(err, store.ErrClassCodeTaken) {
			log.Debug().Str("func", "*classService.CreateClass").Int("attempt", attempt).Msg("join code collision")
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*classService.CreateClass").Msg("class creation failed")
			return models.Class{}, fmt.Errorf("class creation failed: %w", err)
		}
		return created, nil
	}

	return models.Class{}, fmt.Errorf("class creation failed: %w", store.ErrClassCodeTaken)
}

func (s *classService) ListClasses(ctx context.Context, userID int64) ([]models.ClassMembership, error) {
	classes, err := s.classRepository.ListClassesForUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*classService.ListClasses").Msg("error listing classes")
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	return classes, nil
}

// JoinClass enrolls the caller as a student. Joining again keeps the
// existing enrollment and its role.
func (s *classService) JoinClass(ctx context.Context, userID int64, req models.JoinClassRequest) (models.Class, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Class{}, newValidationError(err)
	}

	class, err := s.classRepository.FindClassByCode(ctx, strings.TrimSpace(req.Code))
	if err != nil {
		return models.Class{}, classLookupError(ctx, err)
	}
	if class.OwnerID == userID {
		return models.Class{}, ErrAlreadyClassOwner
	}

	if err = s.enroll(ctx, models.Enrollment{UserID: userID, ClassID: class.ClassID, Role: models.RoleStudent}); err != nil {
		return models.Class{}, err
	}
	return class, nil
}

// Invite lets a teacher of the class invite someone by email. Unknown emails
// get an invitation placeholder account so that the invitation can name a
// user id; the invitee claims it by signing up.
func (s *classService) Invite(ctx context.Context, inviterID, classID int64, req models.InviteRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return newValidationError(err)
	}

	class, err := s.classRepository.FindClassByID(ctx, classID)
	if err != nil {
		return classLookupError(ctx, err)
	}

	role, err := s.classRepository.GetRole(ctx, inviterID, class.ClassID)
	if errors.Is(err, store.ErrEnrollmentNotFound) || (err == nil && role != models.RoleTeacher) {
		return ErrNotClassTeacher
	}
	if err != nil {
		log.Err(err).Str("func", "*classService.Invite").Msg("role lookup failed")
		return fmt.Errorf("role lookup failed: %w", err)
	}

	invitee, err := s.findOrCreateInvitee(ctx, normalizeEmail(req.Email))
	if err != nil {
		return err
	}

	token, err := s.tokens.IssueInvite(ctx, class.ClassID, invitee.UserID, req.Role)
	if err != nil {
		return err
	}

	if err = s.mailer.SendInvitation(ctx, invitee.Email, token); err != nil {
		log.Err(err).Str("func", "*classService.Invite").Msg("invitation mail was not sent")
		return fmt.Errorf("invitation mail was not sent: %w", err)
	}

	log.Info().Int64("class_id", class.ClassID).Int64("invitee_id", invitee.UserID).Str("role", string(req.Role)).Msg("invitation sent")
	return nil
}

func (s *classService) findOrCreateInvitee(ctx context.Context, email string) (models.User, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	user, err = s.userRepository.CreateInvitationPlaceholder(ctx, email)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return s.userRepository.FindUserByEmail(ctx, email)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*classService.findOrCreateInvitee").Msg("placeholder creation failed")
		return models.User{}, fmt.Errorf("placeholder creation failed: %w", err)
	}
	return user, nil
}

// AcceptInvite enrolls the caller with the role named in the invitation. The
// invitation must have been issued to the caller.
func (s *classService) AcceptInvite(ctx context.Context, userID int64, req models.AcceptInviteRequest) (models.Class, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Class{}, newValidationError(err)
	}

	claims, err := s.tokens.VerifyInvite(ctx, req.Token)
	if err != nil {
		return models.Class{}, ErrInvalidInvite
	}
	if claims.UserID != userID {
		return models.Class{}, ErrInviteMismatch
	}

	if err = s.enroll(ctx, models.Enrollment{UserID: userID, ClassID: claims.ClassID, Role: claims.Role}); err != nil {
		return models.Class{}, err
	}

	class, err := s.classRepository.FindClassByID(ctx, claims.ClassID)
	if err != nil {
		return models.Class{}, classLookupError(ctx, err)
	}
	return class, nil
}

func (s *classService) enroll(ctx context.Context, enrollment models.Enrollment) error {
	err := s.classRepository.Enroll(ctx, enrollment)
	if errors.Is(err, store.ErrClassNotFound) {
		return ErrClassNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*classService.enroll").Msg("enrollment failed")
		return fmt.Errorf("enrollment failed: %w", err)
	}
	return nil
}

func classLookupError(ctx context.Context, err error) error {
	if errors.Is(err, store.ErrClassNotFound) {
		return ErrClassNotFound
	}
	logger.FromContext(ctx).Err(err).Str("func", "classLookupError").Msg("class lookup failed")
	return fmt.Errorf("class lookup failed: %w", err)
}
