package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/federation"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/mailer"
	"github.com/MKhiriev/go-lms/internal/store"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/internal/validators"
	"github.com/MKhiriev/go-lms/models"
)

// authService is the concrete implementation of AuthService.
//
// Raw verification and reset tokens exist only in memory and in the mail
// sent to the user; the store only ever sees their SHA-256 digests. Passwords
// are hashed with bcrypt at the configured cost.
type authService struct {
	userRepository store.UserRepository
	tokens         TokenService
	mailer         mailer.Mailer
	verifier       federation.Verifier
	validator      validators.Validator

	passwordCost  int
	resetTokenTTL time.Duration
	// background runs work that must not delay the response.
	background func(func())

	logger *logger.Logger
}

// NewAuthService wires an AuthService. verifier may be nil, which disables
// external login.
func NewAuthService(
	userRepository store.UserRepository,
	tokens TokenService,
	mailer mailer.Mailer,
	verifier federation.Verifier,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		mailer:         mailer,
		verifier:       verifier,
		validator:      validators.NewRequestValidator(),
		passwordCost:   cfg.PasswordHashCost,
		resetTokenTTL:  cfg.ResetTokenTTL,
		background:     func(f func()) { go f() },
		logger:         logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified account and mails its verification link.
//
// An unclaimed invitation placeholder with the same email is claimed instead
// of failing, so invited users can sign up normally. The UNIQUE index on the
// email is the final guard against concurrent signups.
func (a *authService) Register(ctx context.Context, req models.SignupRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		recordAuthEvent("register", "invalid")
		return newValidationError(err)
	}
	email := normalizeEmail(req.Email)

	existing, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
	case err != nil:
		log.Err(err).Str("func", "*authService.Register").Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	case !existing.IsInvitationPlaceholder():
		recordAuthEvent("register", "conflict")
		return ErrEmailAlreadyInUse
	}

	passwordHash, err := utils.HashPassword(req.Password, a.passwordCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	rawToken, err := utils.NewRawToken()
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error generating verification token")
		return err
	}
	digest := utils.HashToken(rawToken)

	user := models.User{
		Email:           email,
		PasswordHash:    passwordHash,
		Profile:         models.Profile{Name: strings.TrimSpace(req.Name)},
		VerifyTokenHash: &digest,
	}

	if existing.IsInvitationPlaceholder() {
		user, err = a.userRepository.ClaimInvitationPlaceholder(ctx, user)
		if errors.Is(err, store.ErrNoUserWasFound) {
			// claimed by a concurrent signup
			recordAuthEvent("register", "conflict")
			return ErrEmailAlreadyInUse
		}
	} else {
		user, err = a.userRepository.CreateUser(ctx, user)
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			recordAuthEvent("register", "conflict")
			return ErrEmailAlreadyInUse
		}
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	a.sendVerification(ctx, user.Email, rawToken)
	recordAuthEvent("register", "success")
	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return nil
}

// sendVerification does not fail the calling operation: the account exists
// either way and a new link can be requested.
func (a *authService) sendVerification(ctx context.Context, email, rawToken string) {
	if err := a.mailer.SendVerification(ctx, email, rawToken); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.sendVerification").Msg("verification mail was not sent")
	}
}

// ResendVerification issues a fresh verification token for an unverified
// account, replacing any outstanding one. The outcome is never reported to
// the caller.
func (a *authService) ResendVerification(ctx context.Context, req models.ResendVerificationRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.ForgotPasswordRequest{Email: req.Email}); err != nil {
		return newValidationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		return nil
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ResendVerification").Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if user.Verified || !user.HasPassword() {
		return nil
	}

	return a.issueVerification(ctx, user)
}

func (a *authService) issueVerification(ctx context.Context, user models.User) error {
	rawToken, err := utils.NewRawToken()
	if err != nil {
		return err
	}

	err = a.userRepository.SetVerifyToken(ctx, user.UserID, utils.HashToken(rawToken))
	if errors.Is(err, store.ErrNoUserWasFound) {
		// verified in the meantime
		return nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.issueVerification").Msg("error storing verification token")
		return fmt.Errorf("error storing verification token: %w", err)
	}

	a.sendVerification(ctx, user.Email, rawToken)
	return nil
}

// Login checks the password before the verified flag, so a caller without
// the password cannot learn that an unverified account exists.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		recordAuthEvent("login", "invalid")
		return models.AuthResponse{}, newValidationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		// keep the response time close to the one of a wrong password
		utils.ComparePassword(dummyPasswordHash(), req.Password)
		recordAuthEvent("login", "invalid_credentials")
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasPassword() || !utils.ComparePassword(user.PasswordHash, req.Password) {
		recordAuthEvent("login", "invalid_credentials")
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	if !user.Verified {
		recordAuthEvent("login", "not_verified")
		return models.AuthResponse{}, ErrNotVerified
	}

	return a.authResponse(ctx, user, "login")
}

var dummyPasswordHash = sync.OnceValue(func() string {
	hash, _ := utils.HashPassword("dummy-password-for-timing", utils.DefaultPasswordCost)
	return hash
})

func (a *authService) authResponse(ctx context.Context, user models.User, event string) (models.AuthResponse, error) {
	token, err := a.tokens.IssueBearer(ctx, user)
	if err != nil {
		recordAuthEvent(event, "error")
		return models.AuthResponse{}, err
	}

	recordAuthEvent(event, "success")
	return models.AuthResponse{
		User:  user.Public(),
		Token: token.SignedString,
	}, nil
}

// VerifyEmail consumes a verification token. The store performs the
// compare-and-clear in a single statement, so of several concurrent calls
// with the same token exactly one succeeds.
func (a *authService) VerifyEmail(ctx context.Context, rawToken string) error {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return newValidationError(validators.ErrTokenRequired)
	}

	err := a.userRepository.ConsumeVerifyToken(ctx, utils.HashToken(rawToken))
	if errors.Is(err, store.ErrTokenNotMatched) {
		recordAuthEvent("verify", "invalid_token")
		return ErrInvalidOrUsedToken
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.VerifyEmail").Msg("error consuming verification token")
		return fmt.Errorf("error consuming verification token: %w", err)
	}

	recordAuthEvent("verify", "success")
	return nil
}

// ForgotPassword stores a reset token and mails it when the email belongs to
// an account. Callers get the same result whether or not it does, including
// when storage or mail fails. The mail is sent in the background so that the
// response time does not depend on the SMTP round trip.
func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return newValidationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		recordAuthEvent("forgot", "unknown_email")
		return nil
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("user lookup failed")
		recordAuthEvent("forgot", "error")
		return nil
	}

	rawToken, err := utils.NewRawToken()
	if err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("error generating reset token")
		recordAuthEvent("forgot", "error")
		return nil
	}

	if err = a.userRepository.SetResetToken(ctx, user.UserID, utils.HashToken(rawToken), a.resetTokenTTL); err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("error storing reset token")
		recordAuthEvent("forgot", "error")
		return nil
	}

	mailCtx := context.WithoutCancel(ctx)
	a.background(func() {
		if err := a.mailer.SendPasswordReset(mailCtx, user.Email, rawToken); err != nil {
			logger.FromContext(mailCtx).Err(err).Str("func", "*authService.ForgotPassword").Msg("reset mail was not sent")
			recordAuthEvent("forgot", "mail_failed")
			return
		}
		recordAuthEvent("forgot", "sent")
	})

	return nil
}

// ResetPassword consumes a reset token and replaces the password in one
// statement; an expired, unknown or already used token changes nothing.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return newValidationError(err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.passwordCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	err = a.userRepository.ConsumeResetToken(ctx, utils.HashToken(req.Token), passwordHash)
	if errors.Is(err, store.ErrTokenNotMatched) {
		recordAuthEvent("reset", "invalid_token")
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("error consuming reset token")
		return fmt.Errorf("error consuming reset token: %w", err)
	}

	recordAuthEvent("reset", "success")
	return nil
}

// AuthenticateExternal logs in with an identity provider assertion. The
// verifier only accepts provider-verified emails, so an existing account with
// that email is linked: it becomes verified, a password chosen before the
// email was confirmed is dropped, and the provider's picture fills an empty
// one. Without an account a verified one without a password is created.
func (a *authService) AuthenticateExternal(ctx context.Context, req models.ExternalAuthRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, newValidationError(err)
	}
	if a.verifier == nil {
		return models.AuthResponse{}, ErrFederationDisabled
	}

	identity, err := a.verifier.Verify(ctx, req.RawAssertion())
	if errors.Is(err, federation.ErrNotConfigured) {
		return models.AuthResponse{}, ErrFederationDisabled
	}
	if err != nil {
		recordAuthEvent("external", "invalid_assertion")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidAssertion, err)
	}
	email := normalizeEmail(identity.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		user, err = a.linkExternalAccount(ctx, user, identity)
		if err != nil {
			return models.AuthResponse{}, err
		}
	case errors.Is(err, store.ErrNoUserWasFound):
		user, err = a.createFederatedUser(ctx, email, identity)
		if err != nil {
			return models.AuthResponse{}, err
		}
	default:
		log.Err(err).Str("func", "*authService.AuthenticateExternal").Msg("user lookup failed")
		return models.AuthResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return a.authResponse(ctx, user, "external")
}

// linkExternalAccount must succeed for an unverified account: logging in
// without it would leave a password set by whoever registered the email.
// For a verified account only the picture is at stake.
func (a *authService) linkExternalAccount(ctx context.Context, user models.User, identity models.ExternalIdentity) (models.User, error) {
	if user.Verified && (user.Profile.Picture != "" || identity.Picture == "") {
		return user, nil
	}

	linked, err := a.userRepository.LinkExternalAccount(ctx, user.UserID, identity.Picture)
	if err == nil {
		if !user.Verified {
			logger.FromContext(ctx).Info().Int64("user_id", user.UserID).Msg("unverified account verified by identity provider")
		}
		return linked, nil
	}

	logger.FromContext(ctx).Err(err).Str("func", "*authService.linkExternalAccount").Bool("verified", user.Verified).Msg("account link failed")
	if !user.Verified {
		return models.User{}, fmt.Errorf("account link failed: %w", err)
	}
	return user, nil
}

func (a *authService) createFederatedUser(ctx context.Context, email string, identity models.ExternalIdentity) (models.User, error) {
	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: models.FederatedPasswordSentinel,
		Profile:      models.Profile{Name: identity.Name, Picture: identity.Picture},
		Verified:     true,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// created by a concurrent login
		return a.userRepository.FindUserByEmail(ctx, email)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.createFederatedUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.UserID).Msg("federated user created")
	return user, nil
}
