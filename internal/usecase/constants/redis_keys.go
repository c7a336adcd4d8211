package constants

import "time"

// Redis 키 관련 상수
const (
	// SessionPrefix 세션 Redis 접두사
	SessionPrefix = "session:"

	// UserSessionsPrefix 사용자별 세션 ID 집합 접두사 (관리자 세션 폐기용)
	UserSessionsPrefix = "user_sessions:"

	// DefaultSessionTTL 기본 세션 유지 시간
	DefaultSessionTTL = 24 * time.Hour
)

// Redis pub/sub 채널
const (
	// KycStatusChannel KYC 상태 변경 이벤트 채널
	KycStatusChannel = "kyc:status_changed"
)

// 로그인 시도 조회 개수
const (
	DefaultLoginAttemptLimit = 50
	MaxLoginAttemptLimit     = 200
)
