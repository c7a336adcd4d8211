package model

import (
	"time"

	"gorm.io/datatypes"
)

// KycRecordModel 사용자 KYC 기록 모델
type KycRecordModel struct {
	ID               string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string     `gorm:"type:char(12);not null;uniqueIndex:idx_kyc_user" json:"user_id"`
	FullName         string     `gorm:"size:200;not null" json:"full_name"`
	DateOfBirth      time.Time  `gorm:"type:date;not null" json:"date_of_birth"`
	DocumentType     string     `gorm:"size:30;not null" json:"document_type"`
	DocumentNumber   string     `gorm:"size:100;not null" json:"document_number"`
	DocumentImageURL *string    `gorm:"type:text" json:"document_image_url,omitempty"`
	SelfieImageURL   *string    `gorm:"type:text" json:"selfie_image_url,omitempty"`
	Status           string     `gorm:"size:20;not null;index" json:"status"`
	RejectionReason  *string    `gorm:"type:text" json:"rejection_reason,omitempty"`
	VerifierKycID    *string    `gorm:"size:100;uniqueIndex:idx_kyc_verifier_id" json:"verifier_kyc_id,omitempty"`
	VerificationURL  *string    `gorm:"type:text" json:"verification_url,omitempty"`
	SubmittedAt      time.Time  `gorm:"not null" json:"submitted_at"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 테이블 이름 지정
func (KycRecordModel) TableName() string {
	return "kyc_records"
}

// KycEventModel KYC 상태 변경 이벤트 모델
type KycEventModel struct {
	ID         uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	KycID      string            `gorm:"type:uuid;not null;index" json:"kyc_id"`
	Source     string            `gorm:"size:20;not null" json:"source"`
	FromStatus string            `gorm:"type:text;not null" json:"from_status"`
	ToStatus   string            `gorm:"type:text;not null" json:"to_status"` // 검증기 원문 상태 그대로
	Accepted   bool              `gorm:"not null" json:"accepted"`
	Reason     *string           `gorm:"type:text" json:"reason,omitempty"`
	Details    datatypes.JSONMap `gorm:"type:jsonb" json:"details,omitempty"`
	CreatedAt  time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 테이블 이름 지정
func (KycEventModel) TableName() string {
	return "kyc_events"
}
