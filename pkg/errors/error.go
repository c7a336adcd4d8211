package errors

import (
	"errors"
	"net/http"
)

// AppError 응답 코드, 클라이언트 메시지, 내부 원인을 함께 담는 에러.
// 원인(cause)은 로그에만 남고 응답 본문에는 실리지 않습니다.
type AppError struct {
	code    string
	message string
	cause   error
}

// NewAppError 코드와 메시지로 에러를 만듭니다. cause는 nil일 수 있습니다.
func NewAppError(code string, message string, cause error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		cause:   cause,
	}
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.code + ": " + e.message + ": " + e.cause.Error()
	}
	return e.code + ": " + e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message 원인을 제외한 메시지
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is 코드가 같은 AppError면 일치로 봅니다
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.code == e.code
}

// publicMessage 노출 불가 코드는 상태 문구로 대체
func (e *AppError) publicMessage() string {
	rule := GetCodeRule(e.code)
	if !rule.Expose {
		return http.StatusText(rule.HTTPStatus)
	}
	return e.message
}

// Wrap 문맥 메시지를 덧붙입니다. AppError가 체인에 있으면 그 코드를 유지하고, 없으면 INTERNAL.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return NewAppError(CodeOf(err), message, err)
}

// CodeOf 체인에서 가장 바깥 AppError의 코드. 없으면 ErrInternal.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.code
	}
	return ErrInternal
}

// HasCode 체인 어디든 해당 코드의 AppError가 있는지 확인합니다
func HasCode(err error, code string) bool {
	return err != nil && errors.Is(err, &AppError{code: code})
}
