package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

func newTestTokenService(t *testing.T) TokenService {
	t.Helper()
	svc, err := NewTokenService(config.App{
		TokenSignKey:   testSignKey,
		TokenIssuer:    "go-lms",
		TokenDuration:  time.Hour,
		InviteDuration: time.Hour,
	}, logger.Nop())
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_EmptyKey(t *testing.T) {
	svc, err := NewTokenService(config.App{TokenDuration: time.Hour}, logger.Nop())

	assert.Nil(t, svc)
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestTokenService_BearerRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()
	user := models.User{UserID: 42, Email: testEmail, Profile: models.Profile{Name: "Ann", Picture: "https://pic"}}

	token, err := svc.IssueBearer(ctx, user)
	require.NoError(t, err)

	// later profile changes are not reflected in an issued token
	user.Profile.Name = "Renamed"

	identity, err := svc.VerifyBearer(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: 42, Email: testEmail, Name: "Ann", Picture: "https://pic"}, identity)
}

func TestTokenService_VerifyBearer_Rejections(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	valid, err := svc.IssueBearer(ctx, models.User{UserID: 1, Email: testEmail})
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.BearerClaims{
		Identity: models.Identity{UserID: 1, Email: testEmail},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "go-lms",
			Audience:  jwt.ClaimStrings{"lms-session"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredSigned, err := expired.SignedString([]byte(testSignKey))
	require.NoError(t, err)

	otherKey, err := NewTokenService(config.App{TokenSignKey: "other", TokenIssuer: "go-lms", TokenDuration: time.Hour}, logger.Nop())
	require.NoError(t, err)
	foreign, err := otherKey.IssueBearer(ctx, models.User{UserID: 1, Email: testEmail})
	require.NoError(t, err)

	invite, err := svc.IssueInvite(ctx, 3, 1, models.RoleStudent)
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "expired", raw: expiredSigned, wantErr: ErrExpiredToken},
		{name: "truncated", raw: valid.SignedString[:len(valid.SignedString)-1], wantErr: ErrInvalidToken},
		{name: "signed with another key", raw: foreign.SignedString, wantErr: ErrInvalidToken},
		{name: "invitation token", raw: invite, wantErr: ErrInvalidToken},
		{name: "garbage", raw: "not-a-jwt", wantErr: ErrInvalidToken},
		{name: "empty", raw: "", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyBearer(ctx, tt.raw)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenService_InviteRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	raw, err := svc.IssueInvite(ctx, 3, 8, models.RoleTeacher)
	require.NoError(t, err)

	claims, err := svc.VerifyInvite(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.ClassID)
	assert.Equal(t, int64(8), claims.UserID)
	assert.Equal(t, models.RoleTeacher, claims.Role)
}

func TestTokenService_VerifyInvite_RejectsSessionToken(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	bearer, err := svc.IssueBearer(ctx, models.User{UserID: 8, Email: testEmail})
	require.NoError(t, err)

	_, err = svc.VerifyInvite(ctx, bearer.SignedString)

	require.ErrorIs(t, err, ErrInvalidInvite)
}
