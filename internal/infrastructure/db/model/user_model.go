package model

import (
	"time"
)

// UserModel 데이터베이스 ORM 모델
type UserModel struct {
	ID            string    `gorm:"type:char(12);primaryKey" json:"id"`
	Username      string    `gorm:"size:100;not null;uniqueIndex:idx_users_username" json:"username"`
	Password      string    `gorm:"size:250;not null" json:"-"`
	Email         *string   `gorm:"size:250" json:"email,omitempty"`
	DisplayName   *string   `gorm:"size:100" json:"display_name,omitempty"`
	Role          string    `gorm:"size:20;not null;default:'user'" json:"role"`
	LastIPAddress *string   `gorm:"size:50" json:"last_ip_address,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 테이블 이름 지정
func (UserModel) TableName() string {
	return "users"
}
