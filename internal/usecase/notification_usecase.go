package usecase

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/service"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/constants"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	"github.com/wekeepgrowing/playvault-backend/pkg/messaging"
	"go.uber.org/zap"
)

// kycEventPublisher KYC 상태 변경 이벤트를 메시지 버스로 발행합니다
type kycEventPublisher struct {
	publisher messaging.Publisher
	channel   string
}

// NewKycEventPublisher KYC 상태 변경 발행자 생성
func NewKycEventPublisher(publisher messaging.Publisher) interfaces.KycNotifier {
	return &kycEventPublisher{
		publisher: publisher,
		channel:   constants.KycStatusChannel,
	}
}

// PublishStatusChanged 상태 변경 이벤트 발행
func (p *kycEventPublisher) PublishStatusChanged(ctx context.Context, event *dto.KycStatusChangedEvent) error {
	if event == nil {
		return fmt.Errorf("이벤트 데이터가 없습니다")
	}
	return p.publisher.Publish(ctx, p.channel, event)
}

// KycNotificationDispatcher KYC 결과 이벤트를 구독해 사용자에게 메일을 보냅니다
type KycNotificationDispatcher struct {
	logger         *zap.Logger
	subscriber     messaging.Subscriber
	userRepository repository.UserRepository
	mailer         service.Mailer
	renderer       service.KycEmailRenderer
}

// NewKycNotificationDispatcher 알림 디스패처 생성
func NewKycNotificationDispatcher(
	logger *zap.Logger,
	subscriber messaging.Subscriber,
	userRepo repository.UserRepository,
	mailer service.Mailer,
	renderer service.KycEmailRenderer,
) *KycNotificationDispatcher {
	return &KycNotificationDispatcher{
		logger:         logger,
		subscriber:     subscriber,
		userRepository: userRepo,
		mailer:         mailer,
		renderer:       renderer,
	}
}

// Run ctx가 끝날 때까지 이벤트를 처리합니다
func (d *KycNotificationDispatcher) Run(ctx context.Context) error {
	messages, err := d.subscriber.Subscribe(ctx, constants.KycStatusChannel)
	if err != nil {
		return fmt.Errorf("KYC 이벤트 구독 실패: %w", err)
	}

	d.logger.Info("KYC 알림 디스패처 시작", zap.String("channel", constants.KycStatusChannel))
	for msg := range messages {
		var event dto.KycStatusChangedEvent
		if err := msg.Decode(&event); err != nil {
			d.logger.Warn("KYC 이벤트 디코딩 실패", zap.Error(err))
			continue
		}
		if err := d.Handle(ctx, &event); err != nil {
			d.logger.Error("KYC 알림 처리 실패",
				zap.String("kyc_id", event.KycID),
				zap.String("user_id", event.UserID),
				zap.Error(err),
			)
		}
	}

	d.logger.Info("KYC 알림 디스패처 종료")
	return nil
}

// Handle 최종 결과(verified, rejected)에 대해서만 메일을 보냅니다.
// 이메일이 없는 사용자는 건너뜁니다.
func (d *KycNotificationDispatcher) Handle(ctx context.Context, event *dto.KycStatusChangedEvent) error {
	if event.Status != entity.KycStatusVerified && event.Status != entity.KycStatusRejected {
		return nil
	}

	user, err := d.userRepository.FindByID(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("사용자 조회 실패: %w", err)
	}
	if user == nil || user.Email == nil || *user.Email == "" {
		d.logger.Debug("이메일 없는 사용자, 알림 생략", zap.String("user_id", event.UserID))
		return nil
	}

	name := user.Username
	if user.DisplayName != nil && *user.DisplayName != "" {
		name = *user.DisplayName
	}

	subject, body, err := d.renderer.GenerateKycResultEmail(name, event.Status == entity.KycStatusVerified, stringValue(event.RejectionReason))
	if err != nil {
		return fmt.Errorf("메일 본문 생성 실패: %w", err)
	}
	return d.mailer.SendMail(ctx, *user.Email, subject, body)
}
