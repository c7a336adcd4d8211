package interfaces

import (
	"context"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
)

// SessionUseCase 세션 관리 인터페이스
type SessionUseCase interface {
	// CreateSession 사용자 세션 생성. isAdmin은 현재 역할로 고정됩니다.
	CreateSession(ctx context.Context, user *entity.User, client dto.ClientInfo) (*entity.Session, error)

	// ResolveSession 세션 ID로 활성 세션 조회. 없거나 만료되었으면 (nil, nil)
	ResolveSession(ctx context.Context, sessionID string) (*entity.Session, error)

	// DestroySession 세션 삭제
	DestroySession(ctx context.Context, sessionID string) error

	// RevokeUserSessions 사용자의 모든 세션 삭제
	RevokeUserSessions(ctx context.Context, userID string) (int, error)
}
