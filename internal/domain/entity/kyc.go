package entity

import (
	"errors"
	"time"
)

// KycStatus KYC 검증 상태
type KycStatus string

const (
	KycStatusNotSubmitted KycStatus = "not_submitted"
	KycStatusPending      KycStatus = "pending"
	KycStatusVerified     KycStatus = "verified"
	KycStatusRejected     KycStatus = "rejected"
)

// Valid 정의된 상태인지 확인
func (s KycStatus) Valid() bool {
	switch s {
	case KycStatusNotSubmitted, KycStatusPending, KycStatusVerified, KycStatusRejected:
		return true
	}
	return false
}

// DocumentType 신분증 종류
type DocumentType string

const (
	DocumentPassport      DocumentType = "passport"
	DocumentDriverLicense DocumentType = "driver_license"
	DocumentIDCard        DocumentType = "id_card"
)

var (
	// ErrRejectionReasonRequired rejected 상태에는 사유가 필요합니다
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	// ErrTransitionNotAllowed 검증기가 허용하지 않는 상태 전이
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

// KycRecord 사용자당 하나의 KYC 기록
type KycRecord struct {
	ID               string
	UserID           string
	FullName         string
	DateOfBirth      time.Time
	DocumentType     DocumentType
	DocumentNumber   string
	DocumentImageURL *string
	SelfieImageURL   *string
	Status           KycStatus
	RejectionReason  *string
	VerifierKycID    *string
	VerificationURL  *string
	SubmittedAt      time.Time
	VerifiedAt       *time.Time
	UpdatedAt        time.Time
}

// Resubmit 제출 내용으로 기록을 덮어쓰고 pending 상태로 되돌립니다
func (k *KycRecord) Resubmit(now time.Time) {
	k.Status = KycStatusPending
	k.RejectionReason = nil
	k.VerifiedAt = nil
	k.VerifierKycID = nil
	k.VerificationURL = nil
	k.SubmittedAt = now
	k.UpdatedAt = now
}

// ApplyVerifierStatus 검증기 결과를 적용합니다.
// pending에서 verified 또는 rejected로의 전이만 허용합니다.
func (k *KycRecord) ApplyVerifierStatus(status KycStatus, reason string, now time.Time) error {
	if k.Status != KycStatusPending {
		return ErrTransitionNotAllowed
	}
	if status != KycStatusVerified && status != KycStatusRejected {
		return ErrTransitionNotAllowed
	}
	return k.SetStatus(status, reason, now)
}

// SetStatus 전이 규칙 없이 상태를 설정하되 불변식은 유지합니다.
// rejected는 사유가 필요하고 verified는 verifiedAt을 기록합니다.
func (k *KycRecord) SetStatus(status KycStatus, reason string, now time.Time) error {
	switch status {
	case KycStatusRejected:
		if reason == "" {
			return ErrRejectionReasonRequired
		}
		k.RejectionReason = &reason
		k.VerifiedAt = nil
	case KycStatusVerified:
		k.RejectionReason = nil
		k.VerifiedAt = &now
	default:
		k.RejectionReason = nil
		k.VerifiedAt = nil
	}
	k.Status = status
	k.UpdatedAt = now
	return nil
}
