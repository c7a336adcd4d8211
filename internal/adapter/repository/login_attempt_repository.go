package repository

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/playvault-backend/internal/adapter/mapper"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

type LoginAttemptRepositoryImpl struct {
	db *gorm.DB
}

// NewLoginAttemptRepository 로그인 시도 저장소 구현체 생성
func NewLoginAttemptRepository(db *gorm.DB) repository.LoginAttemptRepository {
	return &LoginAttemptRepositoryImpl{db: db}
}

// Create 로그인 시도 기록 추가
func (r *LoginAttemptRepositoryImpl) Create(ctx context.Context, attempt *entity.LoginAttempt) error {
	m := mapper.LoginAttemptToModel(attempt)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("로그인 시도 기록 실패: %w", err)
	}

	attempt.ID = m.ID
	attempt.CreatedAt = m.CreatedAt
	return nil
}

// ListByUserID 사용자의 최근 로그인 시도 조회
func (r *LoginAttemptRepositoryImpl) ListByUserID(ctx context.Context, userID string, limit int) ([]*entity.LoginAttempt, error) {
	var models []model.LoginAttemptModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("로그인 시도 조회 실패: %w", err)
	}

	return mapper.LoginAttemptsFromModels(models), nil
}
