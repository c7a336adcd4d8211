package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
)

// RequireAdmin 세션 확인 후 관리자 여부를 검사합니다 (401 / 403)
func RequireAdmin(gate interfaces.AdminGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := gate.RequireAdmin(CurrentSession(c)); err != nil {
				status, body := apperrors.ToResponse(err)
				return c.JSON(status, body)
			}
			return next(c)
		}
	}
}
