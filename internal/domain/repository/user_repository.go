package repository

import (
	"context"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
)

// UserRepository 사용자 엔티티 관련 저장소 인터페이스.
// 조회 메서드는 대상이 없으면 (nil, nil)을 반환합니다.
type UserRepository interface {
	// FindByID ID로 사용자 조회
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername 사용자명으로 사용자 조회 (대소문자 구분)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create 새 사용자 생성. 사용자명 중복 시 ErrDuplicateUsername
	Create(ctx context.Context, user *entity.User) error

	// UpdateLastIP 마지막 로그인 IP 갱신
	UpdateLastIP(ctx context.Context, id, ip string) error

	// UpdateRole 역할 변경
	UpdateRole(ctx context.Context, id string, role entity.Role) error
}
