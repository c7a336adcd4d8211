package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/service"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthConfig 인증 관련 설정
type AuthConfig struct {
	PasswordMinLength int
	HashCost          int
}

// AuthUseCase 인증 유스케이스 구현체
type AuthUseCase struct {
	logger                 *zap.Logger
	config                 AuthConfig
	userRepository         repository.UserRepository
	loginAttemptRepository repository.LoginAttemptRepository
	sessionUseCase         interfaces.SessionUseCase
	locator                service.Locator

	// 존재하지 않는 사용자 로그인 시에도 같은 비용의 비교를 수행하기 위한 해시
	dummyHash string
}

// NewAuthUseCase 새 인증 유스케이스 생성
func NewAuthUseCase(
	logger *zap.Logger,
	config AuthConfig,
	userRepo repository.UserRepository,
	loginAttemptRepo repository.LoginAttemptRepository,
	sessionUC interfaces.SessionUseCase,
	locator service.Locator,
) interfaces.AuthUseCase {
	if locator == nil {
		locator = service.NoopLocator{}
	}
	dummyHash, _ := HashPassword("playvault-dummy-password", config.HashCost)

	return &AuthUseCase{
		logger:                 logger,
		config:                 config,
		userRepository:         userRepo,
		loginAttemptRepository: loginAttemptRepo,
		sessionUseCase:         sessionUC,
		locator:                locator,
		dummyHash:              dummyHash,
	}
}

// Register 사용자 회원가입
func (uc *AuthUseCase) Register(ctx context.Context, params dto.RegisterParams) (*entity.User, *entity.Session, error) {
	// 1. 입력 검증
	if params.Username == "" {
		return nil, nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "Username is required", nil)
	}
	if len(params.Password) < uc.config.PasswordMinLength {
		return nil, nil, apperrors.NewAppError(apperrors.ErrInvalidArgument,
			fmt.Sprintf("Password must be at least %d characters", uc.config.PasswordMinLength), nil)
	}
	// bcrypt는 바이트 단위로 72까지만 받습니다
	if len(params.Password) > MaxPasswordBytes {
		return nil, nil, apperrors.NewAppError(apperrors.ErrInvalidArgument,
			fmt.Sprintf("Password must be at most %d bytes", MaxPasswordBytes), nil)
	}

	// 2. 이미 존재하는 사용자명인지 확인 (동시 가입은 유니크 인덱스가 막습니다)
	existingUser, err := uc.userRepository.FindByUsername(ctx, params.Username)
	if err != nil {
		return nil, nil, apperrors.NewAppError(apperrors.ErrInternal, "사용자명 중복 확인 실패", err)
	}
	if existingUser != nil {
		return nil, nil, apperrors.NewAppError(apperrors.ErrDuplicateUsername, "Username already exists", nil)
	}

	// 3. 비밀번호 해싱
	hashedPassword, err := HashPassword(params.Password, uc.config.HashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, nil, apperrors.NewAppError(apperrors.ErrInvalidArgument,
				fmt.Sprintf("Password must be at most %d bytes", MaxPasswordBytes), nil)
		}
		return nil, nil, apperrors.NewAppError(apperrors.ErrInternal, "비밀번호 해싱 실패", err)
	}

	// 4. 사용자 생성
	user, err := entity.NewUser(params.Username, hashedPassword, params.Email, params.DisplayName)
	if err != nil {
		return nil, nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, err.Error(), nil)
	}
	if user.ID, err = GenerateUserID(); err != nil {
		return nil, nil, apperrors.NewAppError(apperrors.ErrInternal, "사용자 ID 생성 실패", err)
	}
	user.RecordLogin(params.Client.IP)

	if err := uc.userRepository.Create(ctx, user); err != nil {
		if apperrors.HasCode(err, apperrors.ErrDuplicateUsername) {
			return nil, nil, err
		}
		return nil, nil, apperrors.NewAppError(apperrors.ErrInternal, "사용자 생성 실패", err)
	}

	// 5. 세션 발급
	session, err := uc.sessionUseCase.CreateSession(ctx, user, params.Client)
	if err != nil {
		return nil, nil, err
	}

	uc.recordAttempt(ctx, &user.ID, user.Username, params.Client, true, "")

	uc.logger.Info("회원가입 완료",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)
	return user, session, nil
}

// Login 로그인. 존재하지 않는 사용자와 비밀번호 불일치는 같은 에러를 반환합니다.
func (uc *AuthUseCase) Login(ctx context.Context, params dto.LoginParams) (*entity.User, *entity.Session, error) {
	invalid := apperrors.NewAppError(apperrors.ErrInvalidCredentials, "Invalid credentials", nil)

	user, err := uc.userRepository.FindByUsername(ctx, params.Username)
	if err != nil {
		return nil, nil, apperrors.NewAppError(apperrors.ErrInternal, "사용자 조회 실패", err)
	}

	if user == nil {
		VerifyPassword(uc.dummyHash, params.Password)
		uc.recordAttempt(ctx, nil, params.Username, params.Client, false, entity.FailureReasonUnknownUser)
		return nil, nil, invalid
	}

	if !VerifyPassword(user.PasswordHash, params.Password) {
		uc.recordAttempt(ctx, &user.ID, user.Username, params.Client, false, entity.FailureReasonWrongPassword)
		return nil, nil, invalid
	}

	session, err := uc.sessionUseCase.CreateSession(ctx, user, params.Client)
	if err != nil {
		return nil, nil, err
	}

	if params.Client.IP != "" {
		if err := uc.userRepository.UpdateLastIP(ctx, user.ID, params.Client.IP); err != nil {
			uc.logger.Warn("마지막 로그인 IP 갱신 실패", zap.String("user_id", user.ID), zap.Error(err))
		} else {
			user.RecordLogin(params.Client.IP)
		}
	}

	uc.recordAttempt(ctx, &user.ID, user.Username, params.Client, true, "")

	uc.logger.Info("로그인 성공",
		zap.String("user_id", user.ID),
		zap.Bool("is_admin", session.IsAdmin),
	)
	return user, session, nil
}

// Logout 세션 종료
func (uc *AuthUseCase) Logout(ctx context.Context, session *entity.Session) error {
	if session == nil || session.ID == "" {
		return nil
	}
	return uc.sessionUseCase.DestroySession(ctx, session.ID)
}

// CurrentUser 현재 세션의 사용자
func (uc *AuthUseCase) CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error) {
	if !session.IsActive() {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, "Not authenticated", nil)
	}

	user, err := uc.userRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "사용자 조회 실패", err)
	}
	if user == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "User not found", nil)
	}
	return user, nil
}

// recordAttempt 로그인 시도 기록. 실패해도 요청은 계속 진행합니다.
func (uc *AuthUseCase) recordAttempt(ctx context.Context, userID *string, username string, client dto.ClientInfo, success bool, failureReason string) {
	attempt := &entity.LoginAttempt{
		UserID:    userID,
		Username:  username,
		IPAddress: client.IP,
		UserAgent: client.UserAgent,
		Success:   success,
	}
	if failureReason != "" {
		attempt.FailureReason = &failureReason
	}
	if location, ok := uc.locator.Locate(client.IP); ok {
		attempt.Location = &location
	}

	if err := uc.loginAttemptRepository.Create(ctx, attempt); err != nil {
		uc.logger.Warn("로그인 시도 기록 실패",
			zap.String("username", username),
			zap.Bool("success", success),
			zap.Error(err),
		)
	}
}
