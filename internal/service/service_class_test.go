package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/internal/mock"
	"github.com/MKhiriev/go-lms/internal/store"
	"github.com/MKhiriev/go-lms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type classMocks struct {
	classes *mock.MockClassRepository
	users   *mock.MockUserRepository
	tokens  *mock.MockTokenService
	mailer  *mock.MockMailer
}

func newTestClassService(t *testing.T) (*classService, classMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := classMocks{
		classes: mock.NewMockClassRepository(ctrl),
		users:   mock.NewMockUserRepository(ctrl),
		tokens:  mock.NewMockTokenService(ctrl),
		mailer:  mock.NewMockMailer(ctrl),
	}
	svc := NewClassService(m.classes, m.users, m.tokens, m.mailer, logger.Nop()).(*classService)
	return svc, m
}

var testClass = models.Class{ClassID: 3, Code: "ABCD2345", Name: "Algebra", OwnerID: 10}

// ─────────────────────────────────────────────
// CreateClass
// ─────────────────────────────────────────────

func TestClassService_CreateClass(t *testing.T) {
	svc, m := newTestClassService(t)
	svc.newCode = func(n int) (string, error) {
		assert.Equal(t, joinCodeLength, n)
		return "ABCD2345", nil
	}
	m.classes.EXPECT().CreateClass(gomock.Any(), models.Class{Name: "Algebra", Section: "A", Code: "ABCD2345", OwnerID: 10}).
		Return(testClass, nil)

	got, err := svc.CreateClass(context.Background(), 10, models.CreateClassRequest{Name: " Algebra ", Section: "A"})

	require.NoError(t, err)
	assert.Equal(t, testClass, got)
}

func TestClassService_CreateClass_RetriesTakenCode(t *testing.T) {
	svc, m := newTestClassService(t)
	codes := []string{"TAKEN111", "FREE2222"}
	svc.newCode = func(int) (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}
	gomock.InOrder(
		m.classes.EXPECT().CreateClass(gomock.Any(), gomock.Any()).Return(models.Class{}, store.ErrClassCodeTaken),
		m.classes.EXPECT().CreateClass(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c models.Class) (models.Class, error) {
			assert.Equal(t, "FREE2222", c.Code)
			c.ClassID = 3
			return c, nil
		}),
	)

	got, err := svc.CreateClass(context.Background(), 10, models.CreateClassRequest{Name: "Algebra"})

	require.NoError(t, err)
	assert.Equal(t, "FREE2222", got.Code)
}

func TestClassService_CreateClass_GivesUp(t *testing.T) {
	svc, m := newTestClassService(t)
	svc.newCode = func(int) (string, error) { return "TAKEN111", nil }
	m.classes.EXPECT().CreateClass(gomock.Any(), gomock.Any()).Return(models.Class{}, store.ErrClassCodeTaken).Times(joinCodeAttempts)

	_, err := svc.CreateClass(context.Background(), 10, models.CreateClassRequest{Name: "Algebra"})

	require.ErrorIs(t, err, store.ErrClassCodeTaken)
}

func TestClassService_CreateClass_NoName(t *testing.T) {
	svc, _ := newTestClassService(t)

	_, err := svc.CreateClass(context.Background(), 10, models.CreateClassRequest{Section: "A"})

	require.ErrorIs(t, err, ErrValidation)
}

// ─────────────────────────────────────────────
// ListClasses / JoinClass
// ─────────────────────────────────────────────

func TestClassService_ListClasses(t *testing.T) {
	svc, m := newTestClassService(t)
	want := []models.ClassMembership{{Class: testClass, Role: models.RoleTeacher}}
	m.classes.EXPECT().ListClassesForUser(gomock.Any(), int64(10)).Return(want, nil)

	got, err := svc.ListClasses(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClassService_JoinClass(t *testing.T) {
	tests := []struct {
		name    string
		userID  int64
		setup   func(m classMocks)
		wantErr error
	}{
		{
			name:   "student joins",
			userID: 11,
			setup: func(m classMocks) {
				m.classes.EXPECT().FindClassByCode(gomock.Any(), "abcd2345").Return(testClass, nil)
				m.classes.EXPECT().Enroll(gomock.Any(), models.Enrollment{UserID: 11, ClassID: 3, Role: models.RoleStudent}).Return(nil)
			},
		},
		{
			name:   "unknown code",
			userID: 11,
			setup: func(m classMocks) {
				m.classes.EXPECT().FindClassByCode(gomock.Any(), "abcd2345").Return(models.Class{}, store.ErrClassNotFound)
			},
			wantErr: ErrClassNotFound,
		},
		{
			name:   "owner",
			userID: 10,
			setup: func(m classMocks) {
				m.classes.EXPECT().FindClassByCode(gomock.Any(), "abcd2345").Return(testClass, nil)
			},
			wantErr: ErrAlreadyClassOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestClassService(t)
			tt.setup(m)

			got, err := svc.JoinClass(context.Background(), tt.userID, models.JoinClassRequest{Code: " abcd2345 "})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testClass, got)
		})
	}
}

// ─────────────────────────────────────────────
// Invite / AcceptInvite
// ─────────────────────────────────────────────

func TestClassService_Invite_ExistingUser(t *testing.T) {
	svc, m := newTestClassService(t)
	invitee := models.User{UserID: 20, Email: "bob@example.com", Verified: true}

	m.classes.EXPECT().FindClassByID(gomock.Any(), int64(3)).Return(testClass, nil)
	m.classes.EXPECT().GetRole(gomock.Any(), int64(10), int64(3)).Return(models.RoleTeacher, nil)
	m.users.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").Return(invitee, nil)
	m.tokens.EXPECT().IssueInvite(gomock.Any(), int64(3), int64(20), models.RoleStudent).Return("invite-jwt", nil)
	m.mailer.EXPECT().SendInvitation(gomock.Any(), "bob@example.com", "invite-jwt").Return(nil)

	err := svc.Invite(context.Background(), 10, 3, models.InviteRequest{Email: "Bob@Example.com", Role: models.RoleStudent})

	require.NoError(t, err)
}

func TestClassService_Invite_UnknownEmailCreatesPlaceholder(t *testing.T) {
	svc, m := newTestClassService(t)

	m.classes.EXPECT().FindClassByID(gomock.Any(), int64(3)).Return(testClass, nil)
	m.classes.EXPECT().GetRole(gomock.Any(), int64(10), int64(3)).Return(models.RoleTeacher, nil)
	m.users.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	m.users.EXPECT().CreateInvitationPlaceholder(gomock.Any(), "bob@example.com").
		Return(models.User{UserID: 21, Email: "bob@example.com", PasswordHash: models.InvitationPasswordSentinel}, nil)
	m.tokens.EXPECT().IssueInvite(gomock.Any(), int64(3), int64(21), models.RoleTeacher).Return("invite-jwt", nil)
	m.mailer.EXPECT().SendInvitation(gomock.Any(), "bob@example.com", "invite-jwt").Return(nil)

	err := svc.Invite(context.Background(), 10, 3, models.InviteRequest{Email: "bob@example.com", Role: models.RoleTeacher})

	require.NoError(t, err)
}

func TestClassService_Invite_Rejections(t *testing.T) {
	mailErr := errors.New("smtp down")
	tests := []struct {
		name    string
		setup   func(m classMocks)
		wantErr error
	}{
		{
			name: "class not found",
			setup: func(m classMocks) {
				m.classes.EXPECT().FindClassByID(gomock.Any(), int64(3)).Return(models.Class{}, store.ErrClassNotFound)
			},
			wantErr: ErrClassNotFound,
		},
		{
			name: "inviter is a student",
			setup: func(m classMocks) {
				m.classes.EXPECT().FindClassByID(gomock.Any(), int64(3)).Return(testClass, nil)
				m.classes.EXPECT().GetRole(gomock.Any(), int64(10), int64(3)).Return(models.RoleStudent, nil)
			},
			wantErr: ErrNotClassTeacher,
		},
		{
			name: "inviter not enrolled",
			setup: func(m classMocks) {
				m.classes.EXPECT().FindClassByID(gomock.Any(), int64(3)).Return(testClass, nil)
				m.classes.EXPECT().GetRole(gomock.Any(), int64(10), int64(3)).Return(models.Role(""), store.ErrEnrollmentNotFound)
			},
			wantErr: ErrNotClassTeacher,
		},
		{
			name: "mail fails",
			setup: func(m classMocks) {
				m.classes.EXPECT().FindClassByID(gomock.Any(), int64(3)).Return(testClass, nil)
				m.classes.EXPECT().GetRole(gomock.Any(), int64(10), int64(3)).Return(models.RoleTeacher, nil)
				m.users.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").Return(models.User{UserID: 20, Email: "bob@example.com"}, nil)
				m.tokens.EXPECT().IssueInvite(gomock.Any(), int64(3), int64(20), models.RoleStudent).Return("invite-jwt", nil)
				m.mailer.EXPECT().SendInvitation(gomock.Any(), "bob@example.com", "invite-jwt").Return(mailErr)
			},
			wantErr: mailErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestClassService(t)
			tt.setup(m)

			err := svc.Invite(context.Background(), 10, 3, models.InviteRequest{Email: "bob@example.com", Role: models.RoleStudent})

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClassService_AcceptInvite(t *testing.T) {
	claims := models.InviteClaims{ClassID: 3, UserID: 20, Role: models.RoleTeacher}

	t.Run("accepted", func(t *testing.T) {
		svc, m := newTestClassService(t)
		m.tokens.EXPECT().VerifyInvite(gomock.Any(), "invite-jwt").Return(claims, nil)
		m.classes.EXPECT().Enroll(gomock.Any(), models.Enrollment{UserID: 20, ClassID: 3, Role: models.RoleTeacher}).Return(nil)
		m.classes.EXPECT().FindClassByID(gomock.Any(), int64(3)).Return(testClass, nil)

		got, err := svc.AcceptInvite(context.Background(), 20, models.AcceptInviteRequest{Token: "invite-jwt"})

		require.NoError(t, err)
		assert.Equal(t, testClass, got)
	})

	t.Run("issued to someone else", func(t *testing.T) {
		svc, m := newTestClassService(t)
		m.tokens.EXPECT().VerifyInvite(gomock.Any(), "invite-jwt").Return(claims, nil)

		_, err := svc.AcceptInvite(context.Background(), 99, models.AcceptInviteRequest{Token: "invite-jwt"})

		require.ErrorIs(t, err, ErrInviteMismatch)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, m := newTestClassService(t)
		m.tokens.EXPECT().VerifyInvite(gomock.Any(), "invite-jwt").Return(models.InviteClaims{}, ErrInvalidInvite)

		_, err := svc.AcceptInvite(context.Background(), 20, models.AcceptInviteRequest{Token: "invite-jwt"})

		require.ErrorIs(t, err, ErrInvalidInvite)
	})

	t.Run("class deleted", func(t *testing.T) {
		svc, m := newTestClassService(t)
		m.tokens.EXPECT().VerifyInvite(gomock.Any(), "invite-jwt").Return(claims, nil)
		m.classes.EXPECT().Enroll(gomock.Any(), gomock.Any()).Return(store.ErrClassNotFound)

		_, err := svc.AcceptInvite(context.Background(), 20, models.AcceptInviteRequest{Token: "invite-jwt"})

		require.ErrorIs(t, err, ErrClassNotFound)
	})
}
