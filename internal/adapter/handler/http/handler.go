package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
)

// respondError 에러를 {"code", "message"} 응답으로 변환합니다.
// 5xx 응답에는 내부 정보가 담기지 않습니다.
func respondError(c echo.Context, logger *zap.Logger, err error) error {
	status, body := apperrors.ToResponse(err)
	apperrors.LogError(logger, err, "요청 처리 실패",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Int("status", status),
	)
	return c.JSON(status, body)
}

// bindAndValidate 요청 본문을 바인딩하고 검증합니다
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "Invalid request data", err)
	}
	if err := c.Validate(req); err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, validationMessage(err), err)
	}
	return nil
}

// validationMessage 첫 번째 필드 오류를 사람이 읽을 수 있는 메시지로 변환
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request data"
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}

func clientInfo(c echo.Context) dto.ClientInfo {
	return dto.ClientInfo{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

// parseDate RFC3339 또는 YYYY-MM-DD 형식의 날짜
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}
