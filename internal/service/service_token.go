package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/utils"
	"github.com/MKhiriev/go-lms/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs and verifies HS256 tokens with one shared key.
// Tokens are stateless: nothing is stored and nothing can be revoked before
// expiry.
type tokenService struct {
	signKey        string
	issuer         string
	tokenDuration  time.Duration
	inviteDuration time.Duration

	logger *logger.Logger
}

// NewTokenService builds a [TokenService] from the App config. An empty
// signing key is rejected here so that the process fails at startup instead
// of on the first login.
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, fmt.Errorf("%w: empty token sign key", ErrTokenCreationFailed)
	}

	return &tokenService{
		signKey:        cfg.TokenSignKey,
		issuer:         cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		inviteDuration: cfg.InviteDuration,
		logger:         logger,
	}, nil
}

func (s *tokenService) IssueBearer(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateBearerToken(user.Identity(), s.issuer, s.tokenDuration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.IssueBearer").Msg("error signing bearer token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) VerifyBearer(ctx context.Context, raw string) (models.Identity, error) {
	token, err := utils.ValidateAndParseBearerToken(raw, s.signKey, s.issuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Identity{}, ErrExpiredToken
		}
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.VerifyBearer").Msg("bearer token rejected")
		return models.Identity{}, ErrInvalidToken
	}

	return token.Identity, nil
}

func (s *tokenService) IssueInvite(ctx context.Context, classID, userID int64, role models.Role) (string, error) {
	signed, err := utils.GenerateInviteToken(classID, userID, role, s.issuer, s.inviteDuration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.IssueInvite").Msg("error signing invite token")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return signed, nil
}

func (s *tokenService) VerifyInvite(ctx context.Context, raw string) (models.InviteClaims, error) {
	claims, err := utils.ValidateAndParseInviteToken(raw, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.VerifyInvite").Msg("invite token rejected")
		return models.InviteClaims{}, ErrInvalidInvite
	}

	return claims, nil
}
