package model

import "time"

// LoginAttemptModel 로그인 시도 기록 모델
type LoginAttemptModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        *string   `gorm:"type:char(12);index" json:"user_id,omitempty"` // 알 수 없는 사용자명이면 NULL
	Username      string    `gorm:"size:100;not null;index" json:"username"`
	IPAddress     string    `gorm:"size:50" json:"ip_address"`
	UserAgent     string    `gorm:"type:text" json:"user_agent"`
	Success       bool      `gorm:"not null" json:"success"`
	Location      *string   `gorm:"size:200" json:"location,omitempty"`
	FailureReason *string   `gorm:"size:50" json:"failure_reason,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 테이블 이름 지정
func (LoginAttemptModel) TableName() string {
	return "login_attempts"
}
