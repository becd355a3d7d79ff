// Package federation verifies assertions issued by external identity
// providers and turns them into [models.ExternalIdentity] values.
package federation

//go:generate mockgen -source=federation.go -destination=../mock/federation_mock.go -package=mock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
	"google.golang.org/api/idtoken"
)

var (
	// ErrInvalidAssertion is returned for any assertion that fails signature,
	// audience, expiry or claim checks.
	ErrInvalidAssertion = errors.New("invalid identity assertion")

	// ErrNotConfigured is returned when no client ID was configured.
	ErrNotConfigured = errors.New("identity federation is not configured")
)

// Verifier validates a provider assertion.
type Verifier interface {
	Verify(ctx context.Context, assertion string) (models.ExternalIdentity, error)
}

// validateFunc matches [idtoken.Validate].
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleVerifier validates Google ID tokens against the configured OAuth
// client ID.
type GoogleVerifier struct {
	clientID string
	validate validateFunc
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}

// Verify checks the token signature against Google's published keys and the
// audience against the client ID. Only tokens carrying a verified email are
// accepted.
func (v *GoogleVerifier) Verify(ctx context.Context, assertion string) (models.ExternalIdentity, error) {
	log := logger.FromContext(ctx)

	if v.clientID == "" {
		return models.ExternalIdentity{}, ErrNotConfigured
	}

	payload, err := v.validate(ctx, assertion, v.clientID)
	if err != nil {
		log.Debug().Err(err).Str("func", "*GoogleVerifier.Verify").Msg("assertion rejected")
		return models.ExternalIdentity{}, fmt.Errorf("%w: %w", ErrInvalidAssertion, err)
	}

	identity := models.ExternalIdentity{
		Subject: payload.Subject,
		Email:   strings.ToLower(strings.TrimSpace(claimString(payload.Claims, "email"))),
		Name:    claimString(payload.Claims, "name"),
		Picture: claimString(payload.Claims, "picture"),
	}

	if identity.Email == "" {
		return models.ExternalIdentity{}, fmt.Errorf("%w: email claim missing", ErrInvalidAssertion)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return models.ExternalIdentity{}, fmt.Errorf("%w: email not verified by provider", ErrInvalidAssertion)
	}

	return identity, nil
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}
