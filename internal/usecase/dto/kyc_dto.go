package dto

import (
	"time"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
)

// SubmitKycParams KYC 제출 파라미터
type SubmitKycParams struct {
	FullName         string
	DateOfBirth      time.Time
	DocumentType     entity.DocumentType
	DocumentNumber   string
	DocumentImageURL *string
	SelfieImageURL   *string
}

// KycStatusResult 사용자에게 노출되는 KYC 상태
type KycStatusResult struct {
	Status          entity.KycStatus `json:"status"`
	SubmittedAt     *time.Time       `json:"submittedAt,omitempty"`
	VerifiedAt      *time.Time       `json:"verifiedAt,omitempty"`
	RejectionReason *string          `json:"rejectionReason,omitempty"`
	VerificationURL *string          `json:"verificationUrl,omitempty"`
}

// NewKycStatusResult KYC 기록으로부터 상태 결과 생성. record가 nil이면 not_submitted
func NewKycStatusResult(record *entity.KycRecord) *KycStatusResult {
	if record == nil {
		return &KycStatusResult{Status: entity.KycStatusNotSubmitted}
	}
	submittedAt := record.SubmittedAt
	return &KycStatusResult{
		Status:          record.Status,
		SubmittedAt:     &submittedAt,
		VerifiedAt:      record.VerifiedAt,
		RejectionReason: record.RejectionReason,
		VerificationURL: record.VerificationURL,
	}
}

// VerifierUpdateParams 검증기 웹훅 페이로드
type VerifierUpdateParams struct {
	VerifierKycID string
	Status        string
	Details       map[string]interface{}
}

// AdminOverrideParams 관리자 KYC 상태 변경 파라미터
type AdminOverrideParams struct {
	UserID string
	Status entity.KycStatus
	Reason *string
}

// AdminKycView 관리자용 KYC 상세 (이벤트 이력 포함)
type AdminKycView struct {
	Record *entity.KycRecord
	Events []*entity.KycEvent
}

// KycStatusChangedEvent KYC 상태 변경 시 발행되는 이벤트
type KycStatusChangedEvent struct {
	KycID           string           `json:"kyc_id"`
	UserID          string           `json:"user_id"`
	Status          entity.KycStatus `json:"status"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	Source          string           `json:"source"`
	OccurredAt      time.Time        `json:"occurred_at"`
}
