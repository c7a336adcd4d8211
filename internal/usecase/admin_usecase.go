package usecase

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/constants"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
)

// AdminUseCase 관리자 사용자 관리 유스케이스 구현체
type AdminUseCase struct {
	logger                   *zap.Logger
	userRepository           repository.UserRepository
	loginAttemptRepository   repository.LoginAttemptRepository
	adminActionLogRepository repository.AdminActionLogRepository
	sessionUseCase           interfaces.SessionUseCase
	adminGate                interfaces.AdminGate
}

// NewAdminUseCase 새 관리자 유스케이스 생성
func NewAdminUseCase(
	logger *zap.Logger,
	repos *repository.Repositories,
	sessionUC interfaces.SessionUseCase,
	adminGate interfaces.AdminGate,
) interfaces.AdminUseCase {
	return &AdminUseCase{
		logger:                   logger,
		userRepository:           repos.User,
		loginAttemptRepository:   repos.LoginAttempt,
		adminActionLogRepository: repos.AdminActionLog,
		sessionUseCase:           sessionUC,
		adminGate:                adminGate,
	}
}

// ChangeRole 사용자 역할 변경
func (uc *AdminUseCase) ChangeRole(ctx context.Context, admin *entity.Session, userID string, role entity.Role) (*entity.User, error) {
	if err := uc.adminGate.RequireAdmin(admin); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, fmt.Sprintf("Invalid role: %s", role), nil)
	}

	user, err := uc.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == role {
		return user, nil
	}

	previous := user.Role
	if err := uc.userRepository.UpdateRole(ctx, user.ID, role); err != nil {
		if apperrors.HasCode(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "역할 변경 실패", err)
	}
	user.Role = role

	uc.recordAction(ctx, admin, entity.AdminActionRoleChange, user.ID, map[string]interface{}{
		"from": string(previous),
		"to":   string(role),
	})

	uc.logger.Info("사용자 역할 변경",
		zap.String("admin_id", admin.UserID),
		zap.String("user_id", user.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(role)),
	)
	return user, nil
}

// RevokeSessions 사용자의 모든 세션 폐기
func (uc *AdminUseCase) RevokeSessions(ctx context.Context, admin *entity.Session, userID string) (int, error) {
	if err := uc.adminGate.RequireAdmin(admin); err != nil {
		return 0, err
	}

	revoked, err := uc.sessionUseCase.RevokeUserSessions(ctx, userID)
	if err != nil {
		return 0, err
	}

	uc.recordAction(ctx, admin, entity.AdminActionSessionsRevoked, userID, map[string]interface{}{
		"revoked": revoked,
	})

	uc.logger.Info("사용자 세션 폐기",
		zap.String("admin_id", admin.UserID),
		zap.String("user_id", userID),
		zap.Int("revoked", revoked),
	)
	return revoked, nil
}

// ListLoginAttempts 최근 로그인 시도 조회
func (uc *AdminUseCase) ListLoginAttempts(ctx context.Context, admin *entity.Session, userID string, limit int) ([]*entity.LoginAttempt, error) {
	if err := uc.adminGate.RequireAdmin(admin); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > constants.MaxLoginAttemptLimit {
		limit = constants.DefaultLoginAttemptLimit
	}

	attempts, err := uc.loginAttemptRepository.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "로그인 시도 조회 실패", err)
	}
	return attempts, nil
}

func (uc *AdminUseCase) findUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "사용자 조회 실패", err)
	}
	if user == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "User not found", nil)
	}
	return user, nil
}

func (uc *AdminUseCase) recordAction(ctx context.Context, admin *entity.Session, action entity.AdminAction, targetUserID string, detail map[string]interface{}) {
	log := &entity.AdminActionLog{
		AdminID:      admin.UserID,
		Action:       action,
		TargetUserID: &targetUserID,
		Detail:       detail,
	}
	if err := uc.adminActionLogRepository.Create(ctx, log); err != nil {
		uc.logger.Warn("관리자 작업 기록 실패", zap.String("action", string(action)), zap.Error(err))
	}
}
