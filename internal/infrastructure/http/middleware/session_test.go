package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
)

type MockSessionUseCase struct {
	mock.Mock
}

func (m *MockSessionUseCase) CreateSession(ctx context.Context, user *entity.User, client dto.ClientInfo) (*entity.Session, error) {
	args := m.Called(ctx, user, client)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

func (m *MockSessionUseCase) ResolveSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	args := m.Called(ctx, sessionID)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

func (m *MockSessionUseCase) DestroySession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockSessionUseCase) RevokeUserSessions(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type stubGate struct{}

func (stubGate) RequireAdmin(s *entity.Session) error {
	if !s.IsActive() {
		return apperrors.NewAppError(apperrors.ErrUnauthenticated, "Not authenticated", nil)
	}
	if !s.IsAdmin {
		return apperrors.NewAppError(apperrors.ErrUnauthorized, "Admin access required", nil)
	}
	return nil
}

const testCookieName = "playvault_session"

func activeSession(id string, admin bool) *entity.Session {
	return &entity.Session{
		ID:        id,
		UserID:    "U25ABCDEFGH1",
		IsAdmin:   admin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// newTestServer issue 라우트로 쿠키를 발급하고 나머지 라우트에서 해석합니다
func newTestServer(sessionUC *MockSessionUseCase) *echo.Echo {
	cookie := SessionCookie{Name: testCookieName}
	mw := NewSessionMiddleware(sessionUC, cookie, zap.NewNop())

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))))

	e.POST("/issue", func(c echo.Context) error {
		if err := cookie.Issue(c, activeSession(c.QueryParam("id"), false)); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.POST("/clear", func(c echo.Context) error {
		if err := cookie.Clear(c); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/optional", func(c echo.Context) error {
		if s := CurrentSession(c); s != nil {
			return c.String(http.StatusOK, s.ID)
		}
		return c.String(http.StatusOK, "anonymous")
	}, mw.Handle())
	e.GET("/private", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(UserIDKey).(string))
	}, mw.Handle(), RequireSession())
	e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, mw.Handle(), RequireAdmin(stubGate{}))

	return e
}

func issueCookie(t *testing.T, e *echo.Echo, sessionID string) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/issue?id="+sessionID, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == testCookieName {
			return ck
		}
	}
	t.Fatal("session cookie not issued")
	return nil
}

func TestSessionCookie_IssueSetsSecureAttributes(t *testing.T) {
	e := newTestServer(new(MockSessionUseCase))

	ck := issueCookie(t, e, "sess-1")

	assert.True(t, ck.HttpOnly)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.Greater(t, ck.MaxAge, 0)
	assert.NotContains(t, ck.Value, "sess-1", "cookie must be encoded, not plain")
}

func TestSessionCookie_Clear(t *testing.T) {
	e := newTestServer(new(MockSessionUseCase))

	req := httptest.NewRequest(http.MethodPost, "/clear", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestSessionMiddleware_ResolvesCookie(t *testing.T) {
	sessionUC := new(MockSessionUseCase)
	e := newTestServer(sessionUC)
	ck := issueCookie(t, e, "sess-1")

	sessionUC.On("ResolveSession", mock.Anything, "sess-1").Return(activeSession("sess-1", false), nil)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(ck)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "U25ABCDEFGH1", rec.Body.String())
	sessionUC.AssertExpectations(t)
}

func TestSessionMiddleware_NoCookie(t *testing.T) {
	sessionUC := new(MockSessionUseCase)
	e := newTestServer(sessionUC)

	t.Run("optional route passes through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/optional", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("private route is unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"code":"UNAUTHENTICATED","message":"Not authenticated"}`, rec.Body.String())
	})

	sessionUC.AssertNotCalled(t, "ResolveSession", mock.Anything, mock.Anything)
}

func TestSessionMiddleware_ExpiredSessionResetsCookie(t *testing.T) {
	sessionUC := new(MockSessionUseCase)
	e := newTestServer(sessionUC)
	ck := issueCookie(t, e, "sess-gone")

	sessionUC.On("ResolveSession", mock.Anything, "sess-gone").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(ck)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestSessionMiddleware_TamperedCookie(t *testing.T) {
	sessionUC := new(MockSessionUseCase)
	e := newTestServer(sessionUC)

	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "forged-value"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
	sessionUC.AssertNotCalled(t, "ResolveSession", mock.Anything, mock.Anything)
}

func TestSessionMiddleware_StoreFailure(t *testing.T) {
	sessionUC := new(MockSessionUseCase)
	e := newTestServer(sessionUC)
	ck := issueCookie(t, e, "sess-1")

	sessionUC.On("ResolveSession", mock.Anything, "sess-1").
		Return(nil, apperrors.NewAppError(apperrors.ErrInternal, "session lookup failed", errors.New("redis down")))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(ck)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		session    *entity.Session
		wantStatus int
		wantCode   string
	}{
		{name: "admin", session: activeSession("s1", true), wantStatus: http.StatusOK},
		{name: "regular user", session: activeSession("s2", false), wantStatus: http.StatusForbidden, wantCode: apperrors.ErrUnauthorized},
		{name: "anonymous", session: nil, wantStatus: http.StatusUnauthorized, wantCode: apperrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin", nil), rec)
			if tt.session != nil {
				c.Set(SessionKey, tt.session)
			}

			h := RequireAdmin(stubGate{})(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, h(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}
