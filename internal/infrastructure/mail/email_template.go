package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/wekeepgrowing/playvault-backend/internal/domain/service"
)

var _ service.KycEmailRenderer = (*EmailTemplateService)(nil)

// EmailTemplateService 이메일 템플릿 생성 서비스
type EmailTemplateService struct {
	appURL      string
	companyName string
}

// NewEmailTemplateService 이메일 템플릿 서비스 생성
func NewEmailTemplateService(appURL, companyName string) *EmailTemplateService {
	return &EmailTemplateService{appURL: appURL, companyName: companyName}
}

var kycResultTemplate = template.Must(template.New("kyc_result").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta http-equiv="Content-Type" content="text/html; charset=UTF-8" /><title>{{.Subject}}</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#0f1115;">
	<table align="center" border="0" cellpadding="0" cellspacing="0" width="600" style="border-collapse:collapse;background-color:#1a1d24;color:#e6e8ee;">
		<tr><td style="padding:30px;">
			<h1 style="margin:0 0 20px;font-size:24px;">{{.Subject}}</h1>
			<p style="margin:0 0 16px;">Hi {{.Name}},</p>
			{{if .Verified}}
			<p style="margin:0 0 16px;">Your identity verification is complete. Deposits, withdrawals and wagering are now unlocked on your account.</p>
			{{else}}
			<p style="margin:0 0 16px;">We could not verify your identity.</p>
			<p style="margin:0 0 16px;"><strong>Reason:</strong> {{.Reason}}</p>
			<p style="margin:0 0 16px;">You can submit your documents again from your account page.</p>
			{{end}}
			<p style="margin:24px 0 0;"><a href="{{.AppURL}}/account/kyc" style="color:#7c5cff;">Open your account</a></p>
			<p style="margin:24px 0 0;font-size:12px;color:#8a8f9c;">{{.Company}} · This mailbox is not monitored.</p>
		</td></tr>
	</table>
</body>
</html>`))

// GenerateKycResultEmail KYC 결과 안내 메일 제목과 HTML 본문 생성
func (s *EmailTemplateService) GenerateKycResultEmail(name string, verified bool, reason string) (string, string, error) {
	subject := fmt.Sprintf("%s: identity verification approved", s.companyName)
	if !verified {
		subject = fmt.Sprintf("%s: identity verification needs attention", s.companyName)
	}

	var buf bytes.Buffer
	err := kycResultTemplate.Execute(&buf, map[string]interface{}{
		"Subject":  subject,
		"Name":     name,
		"Verified": verified,
		"Reason":   reason,
		"AppURL":   s.appURL,
		"Company":  s.companyName,
	})
	if err != nil {
		return "", "", fmt.Errorf("이메일 템플릿 렌더링 실패: %w", err)
	}
	return subject, buf.String(), nil
}
