package interfaces

import (
	"context"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
)

// KycUseCase KYC 워크플로 인터페이스
type KycUseCase interface {
	// Submit KYC 정보 제출 (재제출 시 덮어쓰기)
	Submit(ctx context.Context, session *entity.Session, params dto.SubmitKycParams) (*entity.KycRecord, error)

	// Status 사용자의 KYC 상태 조회 (로컬 조회만 수행)
	Status(ctx context.Context, session *entity.Session) (*dto.KycStatusResult, error)

	// ApplyVerifierUpdate 검증기 웹훅 결과 반영
	ApplyVerifierUpdate(ctx context.Context, params dto.VerifierUpdateParams) error

	// AdminGet 관리자용 KYC 상세 조회
	AdminGet(ctx context.Context, admin *entity.Session, userID string) (*dto.AdminKycView, error)

	// AdminOverride 관리자 KYC 상태 강제 변경
	AdminOverride(ctx context.Context, admin *entity.Session, params dto.AdminOverrideParams) (*entity.KycRecord, error)

	// Reconcile 검증기 상태를 조회해 pending 기록에 반영합니다
	Reconcile(ctx context.Context, admin *entity.Session, userID string) (*dto.KycStatusResult, error)
}

// KycNotifier KYC 상태 변경 알림
type KycNotifier interface {
	// PublishStatusChanged 상태 변경 이벤트 발행
	PublishStatusChanged(ctx context.Context, event *dto.KycStatusChangedEvent) error
}
