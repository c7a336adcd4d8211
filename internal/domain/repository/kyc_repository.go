package repository

import (
	"context"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
)

// KycRepository KYC 기록 저장소 인터페이스
type KycRepository interface {
	// FindByUserID 사용자 ID로 조회. 없으면 (nil, nil)
	FindByUserID(ctx context.Context, userID string) (*entity.KycRecord, error)

	// FindByVerifierKycID 검증기 ID로 조회. 없으면 (nil, nil)
	FindByVerifierKycID(ctx context.Context, verifierKycID string) (*entity.KycRecord, error)

	// Upsert user_id 기준으로 생성 또는 덮어쓰기
	Upsert(ctx context.Context, record *entity.KycRecord) error

	// UpdateFromPending pending 상태인 경우에만 검증 결과를 반영합니다.
	// 다른 요청이 먼저 상태를 바꿨다면 (false, nil)
	UpdateFromPending(ctx context.Context, record *entity.KycRecord) (bool, error)

	// Save 관리자 변경처럼 전이 규칙 없이 상태를 저장
	Save(ctx context.Context, record *entity.KycRecord) error

	// WithinTransaction fn 전체를 하나의 트랜잭션으로 실행합니다.
	// fn에 전달되는 저장소는 트랜잭션에 묶여 있습니다.
	WithinTransaction(ctx context.Context, fn func(tx KycRepository) error) error
}

// KycEventRepository KYC 상태 변경 이벤트 저장소
type KycEventRepository interface {
	Create(ctx context.Context, event *entity.KycEvent) error
	ListByKycID(ctx context.Context, kycID string) ([]*entity.KycEvent, error)
}

// AdminActionLogRepository 관리자 작업 기록 저장소
type AdminActionLogRepository interface {
	Create(ctx context.Context, log *entity.AdminActionLog) error
}
