package interfaces

import (
	"context"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
)

// AdminGate 관리자 권한 확인
type AdminGate interface {
	RequireAdmin(session *entity.Session) error
}

// AdminUseCase 관리자 사용자 관리 인터페이스
type AdminUseCase interface {
	// ChangeRole 사용자 역할 변경. 기존 세션의 isAdmin은 바뀌지 않습니다.
	ChangeRole(ctx context.Context, admin *entity.Session, userID string, role entity.Role) (*entity.User, error)

	// RevokeSessions 사용자의 모든 세션 폐기
	RevokeSessions(ctx context.Context, admin *entity.Session, userID string) (int, error)

	// ListLoginAttempts 사용자의 최근 로그인 시도 조회
	ListLoginAttempts(ctx context.Context, admin *entity.Session, userID string, limit int) ([]*entity.LoginAttempt, error)
}
