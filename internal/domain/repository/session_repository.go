package repository

import (
	"context"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
)

// SessionRepository 세션 저장소 인터페이스
type SessionRepository interface {
	// Save 세션 저장. 만료 시각 이후 자동 삭제됩니다.
	Save(ctx context.Context, session *entity.Session) error

	// Get 세션 조회. 없거나 만료되었으면 (nil, nil)
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Delete 세션 삭제. 없는 세션 삭제는 성공으로 처리합니다.
	Delete(ctx context.Context, id string) error

	// DeleteByUser 사용자의 모든 세션 삭제 후 삭제된 개수 반환
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
