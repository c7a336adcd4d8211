package interfaces

import (
	"context"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
)

// AuthUseCase 인증 관련 비즈니스 로직 인터페이스
type AuthUseCase interface {
	// Register 회원가입 후 세션을 발급합니다
	Register(ctx context.Context, params dto.RegisterParams) (*entity.User, *entity.Session, error)

	// Login 자격 증명 확인 후 세션을 발급합니다
	Login(ctx context.Context, params dto.LoginParams) (*entity.User, *entity.Session, error)

	// Logout 세션 종료. 세션이 없어도 성공합니다.
	Logout(ctx context.Context, session *entity.Session) error

	// CurrentUser 세션의 사용자 조회
	CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error)
}
