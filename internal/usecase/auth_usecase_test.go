package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	users    *MockUserRepository
	attempts *MockLoginAttemptRepository
	sessions *MockSessionUseCase
	uc       *AuthUseCase
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    new(MockUserRepository),
		attempts: new(MockLoginAttemptRepository),
		sessions: new(MockSessionUseCase),
	}
	f.uc = NewAuthUseCase(
		zap.NewNop(),
		AuthConfig{PasswordMinLength: 6, HashCost: bcrypt.MinCost},
		f.users,
		f.attempts,
		f.sessions,
		nil,
	).(*AuthUseCase)
	return f
}

func testUser(t *testing.T, id, username, password string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{ID: id, Username: username, PasswordHash: hash, Role: role}
}

func TestAuthUseCase_Register(t *testing.T) {
	client := dto.ClientInfo{IP: "203.0.113.7", UserAgent: "test"}

	tests := []struct {
		name         string
		params       dto.RegisterParams
		mockSetup    func(f *authFixture)
		expectedCode string
	}{
		{
			name:   "successful registration",
			params: dto.RegisterParams{Username: "alice", Password: "secret123", Email: strPtr("alice@example.com"), Client: client},
			mockSetup: func(f *authFixture) {
				f.users.On("FindByUsername", mock.Anything, "alice").Return(nil, nil)
				f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
					return u.Username == "alice" && u.Role == entity.RoleUser && len(u.ID) == 12 && u.PasswordHash != "secret123"
				})).Return(nil)
				f.sessions.On("CreateSession", mock.Anything, mock.AnythingOfType("*entity.User"), client).
					Return(&entity.Session{ID: "s-1", UserID: "U12ABC345XYZ", ExpiresAt: time.Now().Add(time.Hour)}, nil)
				f.attempts.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.LoginAttempt) bool {
					return a.Success && a.Username == "alice"
				})).Return(nil)
			},
		},
		{
			name:   "duplicate username",
			params: dto.RegisterParams{Username: "alice", Password: "secret123", Client: client},
			mockSetup: func(f *authFixture) {
				f.users.On("FindByUsername", mock.Anything, "alice").Return(&entity.User{ID: "U00000000001", Username: "alice"}, nil)
			},
			expectedCode: apperrors.ErrDuplicateUsername,
		},
		{
			name:   "duplicate username detected by unique index",
			params: dto.RegisterParams{Username: "alice", Password: "secret123", Client: client},
			mockSetup: func(f *authFixture) {
				f.users.On("FindByUsername", mock.Anything, "alice").Return(nil, nil)
				f.users.On("Create", mock.Anything, mock.Anything).
					Return(apperrors.NewAppError(apperrors.ErrDuplicateUsername, "Username already exists", nil))
			},
			expectedCode: apperrors.ErrDuplicateUsername,
		},
		{
			name:         "password too short",
			params:       dto.RegisterParams{Username: "alice", Password: "abc", Client: client},
			mockSetup:    func(f *authFixture) {},
			expectedCode: apperrors.ErrInvalidArgument,
		},
		{
			name:         "password longer than 72 bytes",
			params:       dto.RegisterParams{Username: "kim", Password: strings.Repeat("가", 30), Client: client},
			mockSetup:    func(f *authFixture) {},
			expectedCode: apperrors.ErrInvalidArgument,
		},
		{
			name:   "password of exactly 72 bytes",
			params: dto.RegisterParams{Username: "kim", Password: strings.Repeat("가", 24), Client: client},
			mockSetup: func(f *authFixture) {
				f.users.On("FindByUsername", mock.Anything, "kim").Return(nil, nil)
				f.users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
				f.sessions.On("CreateSession", mock.Anything, mock.AnythingOfType("*entity.User"), client).
					Return(&entity.Session{ID: "s-1", UserID: "U12ABC345XYZ", ExpiresAt: time.Now().Add(time.Hour)}, nil)
				f.attempts.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:         "missing username",
			params:       dto.RegisterParams{Password: "secret123", Client: client},
			mockSetup:    func(f *authFixture) {},
			expectedCode: apperrors.ErrInvalidArgument,
		},
		{
			name:   "storage failure",
			params: dto.RegisterParams{Username: "alice", Password: "secret123", Client: client},
			mockSetup: func(f *authFixture) {
				f.users.On("FindByUsername", mock.Anything, "alice").Return(nil, errors.New("connection refused"))
			},
			expectedCode: apperrors.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			tt.mockSetup(f)

			user, session, err := f.uc.Register(context.Background(), tt.params)

			if tt.expectedCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, apperrors.CodeOf(err))
				assert.Nil(t, user)
				assert.Nil(t, session)
				f.sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.params.Username, user.Username)
				assert.Equal(t, "s-1", session.ID)
				assert.True(t, VerifyPassword(user.PasswordHash, tt.params.Password))
			}

			f.users.AssertExpectations(t)
			f.attempts.AssertExpectations(t)
		})
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	client := dto.ClientInfo{IP: "203.0.113.7", UserAgent: "test"}
	alice := testUser(t, "U12ABC345XYZ", "alice", "secret123", entity.RoleUser)

	t.Run("successful login", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByUsername", mock.Anything, "alice").Return(alice, nil)
		f.sessions.On("CreateSession", mock.Anything, alice, client).
			Return(&entity.Session{ID: "s-1", UserID: alice.ID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
		f.users.On("UpdateLastIP", mock.Anything, alice.ID, client.IP).Return(nil)
		f.attempts.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.LoginAttempt) bool {
			return a.Success && a.UserID != nil && *a.UserID == alice.ID && a.FailureReason == nil
		})).Return(nil)

		user, session, err := f.uc.Login(context.Background(), dto.LoginParams{Username: "alice", Password: "secret123", Client: client})

		require.NoError(t, err)
		assert.Equal(t, alice.ID, user.ID)
		assert.Equal(t, "s-1", session.ID)
		f.users.AssertExpectations(t)
		f.attempts.AssertExpectations(t)
	})

	t.Run("audit failure does not fail login", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByUsername", mock.Anything, "alice").Return(alice, nil)
		f.sessions.On("CreateSession", mock.Anything, alice, client).
			Return(&entity.Session{ID: "s-1", UserID: alice.ID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
		f.users.On("UpdateLastIP", mock.Anything, alice.ID, client.IP).Return(nil)
		f.attempts.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, _, err := f.uc.Login(context.Background(), dto.LoginParams{Username: "alice", Password: "secret123", Client: client})
		assert.NoError(t, err)
	})
}

func TestAuthUseCase_LoginFailuresAreIndistinguishable(t *testing.T) {
	client := dto.ClientInfo{IP: "198.51.100.1"}
	alice := testUser(t, "U12ABC345XYZ", "alice", "secret123", entity.RoleUser)

	f := newAuthFixture()
	f.users.On("FindByUsername", mock.Anything, "alice").Return(alice, nil)
	f.users.On("FindByUsername", mock.Anything, "mallory").Return(nil, nil)
	f.attempts.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.LoginAttempt) bool {
		return !a.Success && a.UserID != nil && *a.FailureReason == entity.FailureReasonWrongPassword
	})).Return(nil).Once()
	f.attempts.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.LoginAttempt) bool {
		return !a.Success && a.UserID == nil && a.Username == "mallory" && *a.FailureReason == entity.FailureReasonUnknownUser
	})).Return(nil).Once()

	_, _, wrongPassword := f.uc.Login(context.Background(), dto.LoginParams{Username: "alice", Password: "nope", Client: client})
	_, _, unknownUser := f.uc.Login(context.Background(), dto.LoginParams{Username: "mallory", Password: "nope", Client: client})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, apperrors.ErrInvalidCredentials, apperrors.CodeOf(wrongPassword))

	status1, body1 := apperrors.ToResponse(wrongPassword)
	status2, body2 := apperrors.ToResponse(unknownUser)
	assert.Equal(t, status1, status2)
	assert.Equal(t, body1, body2)

	f.sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
	f.attempts.AssertExpectations(t)
}

func TestAuthUseCase_LogoutAndCurrentUser(t *testing.T) {
	active := &entity.Session{ID: "s-1", UserID: "U12ABC345XYZ", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("logout without session succeeds", func(t *testing.T) {
		f := newAuthFixture()
		assert.NoError(t, f.uc.Logout(context.Background(), nil))
		f.sessions.AssertNotCalled(t, "DestroySession", mock.Anything, mock.Anything)
	})

	t.Run("logout destroy failure", func(t *testing.T) {
		f := newAuthFixture()
		f.sessions.On("DestroySession", mock.Anything, "s-1").
			Return(apperrors.NewAppError(apperrors.ErrSessionDestroyFailed, "Failed to destroy session", errors.New("redis down")))

		err := f.uc.Logout(context.Background(), active)
		assert.Equal(t, apperrors.ErrSessionDestroyFailed, apperrors.CodeOf(err))
	})

	t.Run("current user without session", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.uc.CurrentUser(context.Background(), nil)
		assert.Equal(t, apperrors.ErrUnauthenticated, apperrors.CodeOf(err))
	})

	t.Run("current user deleted", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByID", mock.Anything, active.UserID).Return(nil, nil)
		_, err := f.uc.CurrentUser(context.Background(), active)
		assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
	})

	t.Run("current user", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByID", mock.Anything, active.UserID).Return(&entity.User{ID: active.UserID, Username: "alice"}, nil)
		user, err := f.uc.CurrentUser(context.Background(), active)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})
}

func TestGenerateUserID(t *testing.T) {
	id, err := GenerateUserID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
	assert.Regexp(t, `^U[0-9]{2}[0-9A-Z]{9}$`, id)
}

func TestSplitFullName(t *testing.T) {
	first, last := SplitFullName("  Kim Min Jun ")
	assert.Equal(t, "Kim Min", first)
	assert.Equal(t, "Jun", last)

	first, last = SplitFullName("Cher")
	assert.Equal(t, "Cher", first)
	assert.Empty(t, last)
}
