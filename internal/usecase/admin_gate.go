package usecase

import (
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
)

type adminGate struct{}

// NewAdminGate 관리자 권한 확인기 생성
func NewAdminGate() interfaces.AdminGate {
	return adminGate{}
}

// RequireAdmin 활성 세션이 없으면 Unauthenticated, 관리자가 아니면 Forbidden
func (adminGate) RequireAdmin(session *entity.Session) error {
	if !session.IsActive() {
		return apperrors.NewAppError(apperrors.ErrUnauthenticated, "Not authenticated", nil)
	}
	if !session.IsAdmin {
		return apperrors.NewAppError(apperrors.ErrUnauthorized, "Admin access required", nil)
	}
	return nil
}
