package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-lms/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by BearerFromHeader when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// Audiences keep session and invitation tokens signed with the same key from
// being accepted in place of each other.
const (
	bearerAudience = "lms-session"
	inviteAudience = "lms-invite"
)

// GenerateBearerToken creates a signed HMAC-SHA256 session token carrying the
// given identity.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// The identity fields (userId, email, name, picture) are top-level claims.
// Returns an error if the sign key is empty or the duration is not positive.
//
// Example usage:
//
//	token, err := utils.GenerateBearerToken(user.Identity(), "go-lms", 7*24*time.Hour, "secret")
func GenerateBearerToken(identity models.Identity, issuer string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &models.BearerClaims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(identity.UserID, 10),
			Audience:  jwt.ClaimStrings{bearerAudience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Identity:     identity,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateAndParseBearerToken verifies the signature and expiry of a session
// token and returns the identity it carries.
//
// Only HS256 is accepted. When tokenIssuer is not empty the iss claim must
// match it. Expired tokens produce an error wrapping [jwt.ErrTokenExpired],
// so callers can tell them apart with errors.Is.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseBearerToken(rawToken, "secret", "go-lms")
//	if errors.Is(err, jwt.ErrTokenExpired) {
//	    // expired but otherwise valid
//	}
func ValidateAndParseBearerToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.BearerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc(tokenSignKey), parserOptions(tokenIssuer, bearerAudience)...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 {
		return models.Token{}, errors.New("token carries no user id")
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Identity:     claims.Identity,
		ExpiresAt:    expiresAt,
	}, nil
}

// GenerateInviteToken signs a class invitation for userID.
func GenerateInviteToken(classID, userID int64, role models.Role, issuer string, tokenDuration time.Duration, signKey string) (string, error) {
	if tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating invite token")
	}

	now := time.Now()
	claims := &models.InviteClaims{
		ClassID: classID,
		UserID:  userID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  jwt.ClaimStrings{inviteAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing invite token: %w", err)
	}
	return signed, nil
}

// ValidateAndParseInviteToken verifies an invitation link token.
func ValidateAndParseInviteToken(tokenString, tokenSignKey, tokenIssuer string) (models.InviteClaims, error) {
	claims := &models.InviteClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, keyFunc(tokenSignKey), parserOptions(tokenIssuer, inviteAudience)...); err != nil {
		return models.InviteClaims{}, fmt.Errorf("error occurred validating and parsing invite token: %w", err)
	}
	if claims.ClassID <= 0 || claims.UserID <= 0 || !claims.Role.Valid() {
		return models.InviteClaims{}, errors.New("invite token carries incomplete claims")
	}
	return *claims, nil
}

// BearerFromHeader extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func BearerFromHeader(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

func keyFunc(signKey string) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}
}

func parserOptions(issuer, audience string) []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithAudience(audience),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return opts
}
