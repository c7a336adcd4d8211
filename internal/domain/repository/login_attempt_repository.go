package repository

import (
	"context"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
)

// LoginAttemptRepository 로그인 시도 기록 저장소
type LoginAttemptRepository interface {
	Create(ctx context.Context, attempt *entity.LoginAttempt) error
	ListByUserID(ctx context.Context, userID string, limit int) ([]*entity.LoginAttempt, error)
}
