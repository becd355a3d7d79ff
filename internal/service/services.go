package service

import (
	"fmt"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/federation"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/mailer"
	"github.com/MKhiriev/go-lms/internal/objectstore"
	"github.com/MKhiriev/go-lms/internal/store"
)

type Services struct {
	TokenService      TokenService
	AuthService       AuthService
	UserService       UserService
	ClassService      ClassService
	CourseworkService CourseworkService
	AppInfoService    AppInfoService
}

// Dependencies are the external collaborators of the services. A nil
// Verifier disables external login and a nil Objects disables uploads.
type Dependencies struct {
	Mailer   mailer.Mailer
	Verifier federation.Verifier
	Objects  objectstore.Store
}

func NewServices(storages *store.Storages, deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokens, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		TokenService:      tokens,
		AuthService:       NewAuthService(storages.UserRepository, tokens, deps.Mailer, deps.Verifier, cfg.App, logger),
		UserService:       NewUserService(storages.UserRepository, deps.Objects, logger),
		ClassService:      NewClassService(storages.ClassRepository, storages.UserRepository, tokens, deps.Mailer, logger),
		CourseworkService: NewCourseworkService(storages.ClassRepository, storages.CourseworkRepository, deps.Objects, logger),
		AppInfoService:    appInfo,
	}, nil
}
