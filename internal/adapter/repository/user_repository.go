package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wekeepgrowing/playvault-backend/internal/adapter/mapper"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/db/model"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository 사용자 레포지토리 구현체 생성
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// FindByID ID로 사용자 조회
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel

	if err := r.db.WithContext(ctx).First(&userModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // 사용자를 찾지 못함
		}
		return nil, fmt.Errorf("사용자 조회 실패: %w", err)
	}

	return mapper.UserFromModel(&userModel), nil
}

// FindByUsername 사용자명으로 사용자 조회
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel

	if err := r.db.WithContext(ctx).First(&userModel, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("사용자 조회 실패: %w", err)
	}

	return mapper.UserFromModel(&userModel), nil
}

// Create 새 사용자 생성. 유니크 인덱스 충돌은 중복 사용자명으로 변환합니다.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	userModel := mapper.UserToModel(user)

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewAppError(apperrors.ErrDuplicateUsername, "Username already exists", err)
		}
		return fmt.Errorf("사용자 생성 실패: %w", err)
	}

	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt
	return nil
}

// UpdateLastIP 마지막 로그인 IP 갱신
func (r *UserRepositoryImpl) UpdateLastIP(ctx context.Context, id, ip string) error {
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_ip_address": ip,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("마지막 IP 갱신 실패: %w", result.Error)
	}
	return nil
}

// UpdateRole 역할 변경
func (r *UserRepositoryImpl) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":       string(role),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("역할 변경 실패: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrNotFound, "User not found", nil)
	}
	return nil
}
