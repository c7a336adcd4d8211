package errors

import "net/http"

// CodeRule은 에러 코드별 HTTP 상태와 메시지 노출 여부입니다
type CodeRule struct {
	HTTPStatus int
	// Expose가 false이면 클라이언트에는 일반 메시지만 전달합니다
	Expose bool
}

// 코드 매핑 테이블
var codeMapping = map[string]CodeRule{
	ErrInternal:             {http.StatusInternalServerError, false},
	ErrNotFound:             {http.StatusNotFound, true},
	ErrInvalidArgument:      {http.StatusBadRequest, true},
	ErrUnauthenticated:      {http.StatusUnauthorized, true},
	ErrUnauthorized:         {http.StatusForbidden, true},
	ErrConflict:             {http.StatusConflict, true},
	ErrTimeout:              {http.StatusGatewayTimeout, false},
	ErrDuplicateUsername:    {http.StatusBadRequest, true},
	ErrInvalidCredentials:   {http.StatusBadRequest, true},
	ErrSessionDestroyFailed: {http.StatusInternalServerError, false},
	ErrUnknownKycID:         {http.StatusNotFound, true},
	ErrInvalidTransition:    {http.StatusBadRequest, true},
	ErrVerifierUnavailable:  {http.StatusBadGateway, true},
}

// GetCodeRule은 특정 에러 코드의 매핑 규칙을 반환합니다
func GetCodeRule(code string) CodeRule {
	if rule, ok := codeMapping[code]; ok {
		return rule
	}
	return CodeRule{HTTPStatus: http.StatusInternalServerError}
}
