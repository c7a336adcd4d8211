package mail

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/service"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var _ service.Mailer = (*SMTPClient)(nil)

// SMTPConfig SMTP 설정 구조체
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// SMTPClient gomail 기반 이메일 발송 클라이언트
type SMTPClient struct {
	config SMTPConfig
	logger *zap.Logger
	send   func(m *gomail.Message) error
}

// NewSMTPClient SMTP 클라이언트 생성
func NewSMTPClient(cfg SMTPConfig, logger *zap.Logger) *SMTPClient {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPClient{
		config: cfg,
		logger: logger,
		send: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
	}
}

// SendMail HTML 이메일 발송
func (m *SMTPClient) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.config.From, m.config.FromName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.send(msg); err != nil {
		m.logger.Error("이메일 발송 실패",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return fmt.Errorf("이메일 발송 실패: %w", err)
	}

	m.logger.Info("이메일 발송 성공",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
