package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/constants"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
)

// SessionConfig 세션 관련 설정
type SessionConfig struct {
	TTL time.Duration
}

// SessionUseCase 세션 관리 유스케이스 구현체
type SessionUseCase struct {
	logger            *zap.Logger
	config            SessionConfig
	sessionRepository repository.SessionRepository
}

// NewSessionUseCase 새 세션 유스케이스 생성
func NewSessionUseCase(logger *zap.Logger, config SessionConfig, sessionRepo repository.SessionRepository) interfaces.SessionUseCase {
	if config.TTL <= 0 {
		config.TTL = constants.DefaultSessionTTL
	}
	return &SessionUseCase{
		logger:            logger,
		config:            config,
		sessionRepository: sessionRepo,
	}
}

// CreateSession 사용자를 위한 새 세션을 생성합니다
func (uc *SessionUseCase) CreateSession(ctx context.Context, user *entity.User, client dto.ClientInfo) (*entity.Session, error) {
	session := entity.NewSession(uuid.NewString(), user, uc.config.TTL, client.IP, client.UserAgent)

	if err := uc.sessionRepository.Save(ctx, session); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "세션 생성 실패", err)
	}

	uc.logger.Debug("세션 생성",
		zap.String("user_id", user.ID),
		zap.Bool("is_admin", session.IsAdmin),
		zap.Time("expires_at", session.ExpiresAt),
	)
	return session, nil
}

// ResolveSession 활성 세션 조회
func (uc *SessionUseCase) ResolveSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "" {
		return nil, nil
	}

	session, err := uc.sessionRepository.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "세션 조회 실패", err)
	}
	if !session.IsActive() {
		return nil, nil
	}
	return session, nil
}

// DestroySession 세션 삭제
func (uc *SessionUseCase) DestroySession(ctx context.Context, sessionID string) error {
	if err := uc.sessionRepository.Delete(ctx, sessionID); err != nil {
		return apperrors.NewAppError(apperrors.ErrSessionDestroyFailed, "Failed to destroy session", err)
	}
	return nil
}

// RevokeUserSessions 사용자의 모든 세션 삭제
func (uc *SessionUseCase) RevokeUserSessions(ctx context.Context, userID string) (int, error) {
	n, err := uc.sessionRepository.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrSessionDestroyFailed, fmt.Sprintf("사용자 %s 세션 폐기 실패", userID), err)
	}
	return n, nil
}
