package errors

// 공통 에러 코드 정의
const (
	// 일반적인 에러 코드
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrUnauthenticated = "UNAUTHENTICATED"
	ErrUnauthorized    = "UNAUTHORIZED"
	ErrConflict        = "CONFLICT"
	ErrTimeout         = "TIMEOUT"

	// 인증/세션
	ErrDuplicateUsername    = "DUPLICATE_USERNAME"
	ErrInvalidCredentials   = "INVALID_CREDENTIALS"
	ErrSessionDestroyFailed = "SESSION_DESTROY_FAILED"

	// KYC
	ErrUnknownKycID        = "UNKNOWN_KYC_ID"
	ErrInvalidTransition   = "INVALID_TRANSITION"
	ErrVerifierUnavailable = "VERIFIER_UNAVAILABLE"
)
