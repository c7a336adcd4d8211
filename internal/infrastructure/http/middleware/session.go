package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
)

// 컨텍스트 키 상수
const (
	SessionKey = "session"
	UserIDKey  = "user_id"
)

// 쿠키 세션에 저장되는 값. 쿠키에는 세션 ID만 담습니다.
const sessionIDValue = "session_id"

// SessionCookie 서명된 세션 쿠키 설정
type SessionCookie struct {
	Name   string
	Secure bool
}

// Issue 세션 ID를 쿠키에 기록합니다
func (sc SessionCookie) Issue(c echo.Context, s *entity.Session) error {
	sess, err := session.Get(sc.Name, c)
	if sess == nil {
		return err
	}
	sess.Values = map[interface{}]interface{}{sessionIDValue: s.ID}
	sess.Options = sc.options(int(time.Until(s.ExpiresAt).Seconds()))
	return sess.Save(c.Request(), c.Response())
}

// Clear 쿠키를 즉시 만료시킵니다
func (sc SessionCookie) Clear(c echo.Context) error {
	sess, err := session.Get(sc.Name, c)
	if sess == nil {
		return err
	}
	sess.Values = make(map[interface{}]interface{})
	sess.Options = sc.options(-1)
	return sess.Save(c.Request(), c.Response())
}

func (sc SessionCookie) options(maxAge int) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CurrentSession 세션 미들웨어가 확인한 세션. 없으면 nil
func CurrentSession(c echo.Context) *entity.Session {
	s, _ := c.Get(SessionKey).(*entity.Session)
	return s
}

// SessionMiddleware 쿠키의 세션 ID를 서버 세션으로 해석합니다.
// 세션이 없어도 요청을 막지 않으며 접근 제어는 RequireSession/RequireAdmin이 담당합니다.
type SessionMiddleware struct {
	sessionUseCase interfaces.SessionUseCase
	cookie         SessionCookie
	logger         *zap.Logger
}

// NewSessionMiddleware 새 세션 미들웨어 생성
func NewSessionMiddleware(sessionUC interfaces.SessionUseCase, cookie SessionCookie, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUseCase: sessionUC,
		cookie:         cookie,
		logger:         logger,
	}
}

// Handle 세션 해석 미들웨어 반환
func (m *SessionMiddleware) Handle() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(m.cookie.Name, c)
			if err != nil {
				// 서명이 맞지 않는 쿠키
				m.logger.Warn("세션 쿠키 검증 실패",
					zap.Error(err),
					zap.String("ip", c.RealIP()),
				)
				m.reset(c)
				return next(c)
			}

			sessionID, _ := sess.Values[sessionIDValue].(string)
			if sessionID == "" {
				return next(c)
			}

			resolved, err := m.sessionUseCase.ResolveSession(c.Request().Context(), sessionID)
			if err != nil {
				return err
			}
			if resolved == nil {
				m.reset(c)
				return next(c)
			}

			c.Set(SessionKey, resolved)
			c.Set(UserIDKey, resolved.UserID)
			return next(c)
		}
	}
}

// RequireSession 활성 세션이 없으면 401
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !CurrentSession(c).IsActive() {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
					Code:    apperrors.ErrUnauthenticated,
					Message: "Not authenticated",
				})
			}
			return next(c)
		}
	}
}

func (m *SessionMiddleware) reset(c echo.Context) {
	if err := m.cookie.Clear(c); err != nil {
		m.logger.Warn("세션 쿠키 초기화 실패", zap.Error(err))
	}
}
