package entity

import "time"

// AdminAction 관리자 감사 로그 액션 유형
type AdminAction string

const (
	AdminActionKycOverride     AdminAction = "KYC_OVERRIDE"
	AdminActionKycReconcile    AdminAction = "KYC_RECONCILE"
	AdminActionRoleChange      AdminAction = "ROLE_CHANGE"
	AdminActionSessionsRevoked AdminAction = "SESSIONS_REVOKED"
)

// AdminActionLog 관리자 작업 기록 (추가 전용)
type AdminActionLog struct {
	ID           uint
	AdminID      string
	Action       AdminAction
	TargetUserID *string
	Detail       map[string]interface{}
	CreatedAt    time.Time
}

// KycEventSource KYC 상태 변경 출처
type KycEventSource string

const (
	KycEventSourceWebhook   KycEventSource = "webhook"
	KycEventSourceAdmin     KycEventSource = "admin"
	KycEventSourceReconcile KycEventSource = "reconcile"
)

// KycEvent KYC 상태 변경 시도 기록. 거부된 전이도 남깁니다.
type KycEvent struct {
	ID         uint
	KycID      string
	Source     KycEventSource
	FromStatus KycStatus
	ToStatus   KycStatus
	Accepted   bool
	Reason     *string
	Details    map[string]interface{}
	CreatedAt  time.Time
}
