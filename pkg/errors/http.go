package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse는 클라이언트로 내려가는 에러 본문입니다
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPStatus는 에러 코드를 HTTP 상태 코드로 변환합니다
func ToHTTPStatus(code string) int {
	return GetCodeRule(code).HTTPStatus
}

// ToResponse는 에러를 HTTP 상태와 응답 본문으로 변환합니다.
// 노출 불가 코드는 일반 메시지로 대체됩니다.
func ToResponse(err error) (int, ErrorResponse) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ToHTTPStatus(appErr.code), ErrorResponse{Code: appErr.code, Message: appErr.publicMessage()}
	}

	// Echo 에러인 경우 상태 코드 유지
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		code := httpStatusToCode(echoErr.Code)
		msg, ok := echoErr.Message.(string)
		if !ok || echoErr.Code >= http.StatusInternalServerError {
			msg = http.StatusText(echoErr.Code)
		}
		return echoErr.Code, ErrorResponse{Code: code, Message: msg}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Code:    ErrInternal,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

// httpStatusToCode는 HTTP 상태 코드를 내부 에러 코드로 변환합니다
func httpStatusToCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge:
		return ErrInvalidArgument
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	case http.StatusGatewayTimeout:
		return ErrTimeout
	case http.StatusMethodNotAllowed:
		return ErrInvalidArgument
	default:
		return ErrInternal
	}
}
