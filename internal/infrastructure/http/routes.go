package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	handler "github.com/wekeepgrowing/playvault-backend/internal/adapter/handler/http"
)

// Access 라우트 접근 수준
type Access int

const (
	// AccessPublic 세션을 확인하지 않음
	AccessPublic Access = iota
	// AccessOptional 세션이 있으면 해석하지만 요구하지 않음
	AccessOptional
	// AccessSession 활성 세션 필요 (401)
	AccessSession
	// AccessAdmin 관리자 세션 필요 (401 / 403)
	AccessAdmin
)

// Route 라우트 테이블 항목
type Route struct {
	Method  string
	Path    string
	Access  Access
	Handler echo.HandlerFunc
}

// Handlers 라우트 테이블을 구성하는 핸들러 묶음
type Handlers struct {
	Auth    *handler.AuthHandler
	Kyc     *handler.KycHandler
	Admin   *handler.AdminHandler
	Webhook *handler.WebhookHandler
}

// Routes 서비스의 전체 라우트 테이블
func Routes(h Handlers) []Route {
	return []Route{
		{http.MethodGet, "/health", AccessPublic, health},

		// 인증
		{http.MethodPost, "/api/auth/register", AccessPublic, h.Auth.Register},
		{http.MethodPost, "/api/auth/login", AccessPublic, h.Auth.Login},
		{http.MethodPost, "/api/auth/logout", AccessOptional, h.Auth.Logout},
		{http.MethodGet, "/api/auth/me", AccessSession, h.Auth.Me},

		// KYC
		{http.MethodPost, "/api/kyc/submit", AccessSession, h.Kyc.Submit},
		{http.MethodGet, "/api/kyc/status", AccessSession, h.Kyc.Status},

		// 관리자
		{http.MethodGet, "/api/admin/users/:id/kyc", AccessAdmin, h.Admin.GetKyc},
		{http.MethodPut, "/api/admin/users/:id/kyc", AccessAdmin, h.Admin.UpdateKyc},
		{http.MethodPost, "/api/admin/users/:id/kyc/reconcile", AccessAdmin, h.Admin.ReconcileKyc},
		{http.MethodPut, "/api/admin/users/:id/role", AccessAdmin, h.Admin.ChangeRole},
		{http.MethodDelete, "/api/admin/users/:id/sessions", AccessAdmin, h.Admin.RevokeSessions},
		{http.MethodGet, "/api/admin/users/:id/login-attempts", AccessAdmin, h.Admin.ListLoginAttempts},

		// 외부 검증기 콜백 (서명 검증은 핸들러가 수행)
		{http.MethodPost, "/api/webhooks/kyc", AccessPublic, h.Webhook.HandleKyc},
	}
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
