package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	handler "github.com/wekeepgrowing/playvault-backend/internal/adapter/handler/http"
	appmiddleware "github.com/wekeepgrowing/playvault-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	"github.com/wekeepgrowing/playvault-backend/pkg/logger"
	"go.uber.org/zap"
)

// Server HTTP 서버 구조체
type Server struct {
	router  *echo.Echo
	server  *http.Server
	logger  *zap.Logger
	address string
}

// Config HTTP 서버 설정
type Config struct {
	Port         string
	Timeout      int
	Debug        bool
	AllowOrigins []string
	BodyLimit    string
	CookieSecret string
}

// NewServer HTTP 서버 생성
func NewServer(cfg Config, zapLogger *zap.Logger) (*Server, error) {
	if cfg.CookieSecret == "" {
		return nil, errors.New("session.cookie_secret is required")
	}

	e := echo.New()
	e.Debug = cfg.Debug
	e.Validator = handler.NewRequestValidator()

	// 기본 미들웨어 설정
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// 로그 미들웨어 설정
	e.Use(logger.NewEchoRequestLogger(zapLogger))

	// Echo 에러 핸들러 설정
	logger.WithEchoLogger(e, zapLogger)

	if len(cfg.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.AllowOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}

	// 서명된 쿠키 저장소. 쿠키에는 세션 ID만 담기고 세션 데이터는 Redis에 있습니다.
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.CookieSecret))))

	address := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         address,
		ReadTimeout:  time.Duration(cfg.Timeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Timeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Timeout) * time.Second,
	}

	return &Server{
		router:  e,
		server:  server,
		logger:  zapLogger,
		address: address,
	}, nil
}

// Router Echo 인스턴스 반환
func (s *Server) Router() *echo.Echo {
	return s.router
}

// RegisterRoutes 라우트 테이블 등록. 접근 수준에 따라 세션/관리자 미들웨어를 붙입니다.
func (s *Server) RegisterRoutes(routes []Route, sessionMW *appmiddleware.SessionMiddleware, gate interfaces.AdminGate) {
	resolve := sessionMW.Handle()
	requireSession := appmiddleware.RequireSession()
	requireAdmin := appmiddleware.RequireAdmin(gate)

	for _, r := range routes {
		var mws []echo.MiddlewareFunc
		switch r.Access {
		case AccessOptional:
			mws = []echo.MiddlewareFunc{resolve}
		case AccessSession:
			mws = []echo.MiddlewareFunc{resolve, requireSession}
		case AccessAdmin:
			mws = []echo.MiddlewareFunc{resolve, requireAdmin}
		}
		s.router.Add(r.Method, r.Path, r.Handler, mws...)
	}

	s.logger.Info("HTTP 라우트 등록 완료", zap.Int("routes", len(routes)))
}

// Start HTTP 서버 시작
func (s *Server) Start() error {
	s.logger.Info("HTTP 서버 시작",
		zap.String("address", s.address),
	)

	s.server.Handler = s.router
	return s.router.StartServer(s.server)
}

// Stop HTTP 서버 종료
func (s *Server) Stop() error {
	s.logger.Info("HTTP 서버 종료 중...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.router.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP 서버 종료 실패: %w", err)
	}

	s.logger.Info("HTTP 서버 종료 완료")
	return nil
}
