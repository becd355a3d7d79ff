package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/objectstore"
	"github.com/MKhiriev/go-lms/internal/store"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/internal/validators"
	"github.com/MKhiriev/go-lms/models"
)

type userService struct {
	userRepository store.UserRepository
	objects        objectstore.Store
	ids            *utils.UUIDGenerator
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, objects objectstore.Store, logger *logger.Logger) UserService {
	if objects == nil {
		objects = objectstore.Disabled{}
	}

	return &userService{
		userRepository: userRepository,
		objects:        objects,
		ids:            utils.NewUUIDGenerator(),
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

func (s *userService) findUser(ctx context.Context, funcName string, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	return user, nil
}

// GetMe reads the caller's record from the store rather than from the token,
// so profile changes made after login are visible.
func (s *userService) GetMe(ctx context.Context, userID int64) (models.PublicUser, error) {
	user, err := s.findUser(ctx, "*userService.GetMe", userID)
	if err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.PublicUser, error) {
	user, err := s.findUser(ctx, "*userService.GetUser", userID)
	if err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.PublicUser, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.PublicUser{}, newValidationError(err)
	}

	user, err := s.userRepository.MergeProfile(ctx, userID, models.Profile{Name: strings.TrimSpace(req.Name)})
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.PublicUser{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateProfile").Msg("profile update failed")
		return models.PublicUser{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user.Public(), nil
}

// CreateAvatarUpload returns a presigned URL the client PUTs the image to.
// The picture is only changed by a later SetAvatar call with the returned key.
func (s *userService) CreateAvatarUpload(ctx context.Context, userID int64, req models.AvatarUploadRequest) (models.UploadTarget, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.UploadTarget{}, newValidationError(err)
	}

	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	target, err := s.objects.PresignUpload(ctx, objectstore.AvatarKey(s.ids, userID, contentType), contentType)
	if errors.Is(err, objectstore.ErrNotConfigured) {
		return models.UploadTarget{}, ErrUploadsDisabled
	}
	if err != nil {
		return models.UploadTarget{}, fmt.Errorf("error creating upload: %w", err)
	}

	return target, nil
}

func (s *userService) SetAvatar(ctx context.Context, userID int64, req models.SetAvatarRequest) (string, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", newValidationError(err)
	}

	if err := objectstore.CheckAvatarKey(userID, req.Key); err != nil {
		if errors.Is(err, objectstore.ErrForeignObject) {
			return "", ErrForeignUpload
		}
		return "", newValidationError(err)
	}

	picture := s.objects.PublicURL(req.Key)
	if picture == "" {
		return "", ErrUploadsDisabled
	}

	user, err := s.userRepository.MergeProfile(ctx, userID, models.Profile{Picture: picture})
	if errors.Is(err, store.ErrNoUserWasFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.SetAvatar").Msg("avatar update failed")
		return "", fmt.Errorf("avatar update failed: %w", err)
	}

	return user.Profile.Picture, nil
}
