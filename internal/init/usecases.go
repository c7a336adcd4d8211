package init

import (
	"github.com/wekeepgrowing/playvault-backend/internal/config"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/db"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// UseCases 애플리케이션의 모든 유스케이스 컨테이너
type UseCases struct {
	AuthUseCase    interfaces.AuthUseCase
	SessionUseCase interfaces.SessionUseCase
	AdminGate      interfaces.AdminGate
	AdminUseCase   interfaces.AdminUseCase
	KycUseCase     interfaces.KycUseCase

	// Notifications SMTP가 설정되지 않으면 nil
	Notifications *usecase.KycNotificationDispatcher
}

// NewUseCases 모든 유스케이스 인스턴스 생성 및 초기화
func NewUseCases(
	cfg *config.Config,
	repos *repository.Repositories,
	infra *db.Infrastructure,
	logger *zap.Logger,
) *UseCases {
	useCases := &UseCases{}

	// 1. 하위 유스케이스
	useCases.SessionUseCase = usecase.NewSessionUseCase(
		logger,
		usecase.SessionConfig{TTL: cfg.Session.TTL},
		repos.Session,
	)
	useCases.AdminGate = usecase.NewAdminGate()

	// 2. 인증
	useCases.AuthUseCase = usecase.NewAuthUseCase(
		logger,
		usecase.AuthConfig{
			PasswordMinLength: cfg.Auth.PasswordMinLength,
			HashCost:          cfg.Auth.HashCost,
		},
		repos.User,
		repos.LoginAttempt,
		useCases.SessionUseCase,
		infra.Locator,
	)

	// 3. 관리자
	useCases.AdminUseCase = usecase.NewAdminUseCase(
		logger,
		repos,
		useCases.SessionUseCase,
		useCases.AdminGate,
	)

	// 4. KYC (상태 변경 이벤트는 Redis 버스로 발행)
	var notifier interfaces.KycNotifier
	if infra.Bus != nil {
		notifier = usecase.NewKycEventPublisher(infra.Bus)
	}
	useCases.KycUseCase = usecase.NewKycUseCase(
		logger,
		repos,
		infra.Verifier,
		useCases.AdminGate,
		notifier,
	)

	// 5. 결과 안내 메일
	if infra.SMTPClient != nil && infra.Bus != nil {
		useCases.Notifications = usecase.NewKycNotificationDispatcher(
			logger.Named("kyc-notify"),
			infra.Bus,
			repos.User,
			infra.SMTPClient,
			infra.EmailTemplates,
		)
	}

	return useCases
}
