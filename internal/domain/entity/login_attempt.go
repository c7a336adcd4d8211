package entity

import "time"

// 로그인 실패 사유
const (
	FailureReasonUnknownUser   = "unknown_username"
	FailureReasonWrongPassword = "wrong_password"
)

// LoginAttempt 로그인 시도 기록 (추가 전용)
type LoginAttempt struct {
	ID            uint
	UserID        *string
	Username      string
	IPAddress     string
	UserAgent     string
	Success       bool
	Location      *string
	FailureReason *string
	CreatedAt     time.Time
}
