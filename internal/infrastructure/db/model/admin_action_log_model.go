package model

import (
	"time"

	"gorm.io/datatypes"
)

// AdminActionLogModel 관리자 작업 감사 로그 모델
type AdminActionLogModel struct {
	ID           uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID      string            `gorm:"type:char(12);not null;index" json:"admin_id"`
	Action       string            `gorm:"size:50;not null;index" json:"action"`
	TargetUserID *string           `gorm:"type:char(12);index" json:"target_user_id,omitempty"`
	Detail       datatypes.JSONMap `gorm:"type:jsonb" json:"detail"`
	CreatedAt    time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 테이블 이름 지정
func (AdminActionLogModel) TableName() string {
	return "admin_action_logs"
}
