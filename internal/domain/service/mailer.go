package service

import "context"

// Mailer 이메일 발송
type Mailer interface {
	SendMail(ctx context.Context, to, subject, htmlBody string) error
}

// KycEmailRenderer KYC 결과 안내 메일 본문 생성
type KycEmailRenderer interface {
	GenerateKycResultEmail(name string, verified bool, reason string) (subject string, body string, err error)
}
