package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
)

// SignatureHeader 검증기 웹훅 서명 헤더 (본문의 HMAC-SHA256 hex)
const SignatureHeader = "X-Verifier-Signature"

// WebhookHandler 외부 KYC 검증기 콜백 핸들러
type WebhookHandler struct {
	logger        *zap.Logger
	kycUseCase    interfaces.KycUseCase
	webhookSecret string
}

// NewWebhookHandler 새 웹훅 핸들러 생성
func NewWebhookHandler(logger *zap.Logger, kycUC interfaces.KycUseCase, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		logger:        logger,
		kycUseCase:    kycUC,
		webhookSecret: webhookSecret,
	}
}

type kycWebhookPayload struct {
	KycID               string                 `json:"kyc_id"`
	Status              string                 `json:"status"`
	VerificationDetails map[string]interface{} `json:"verification_details"`
}

// HandleKyc handles POST /api/webhooks/kyc
func (h *WebhookHandler) HandleKyc(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return respondError(c, h.logger, apperrors.NewAppError(apperrors.ErrInvalidArgument, "Error reading request body", err))
	}

	sig := c.Request().Header.Get(SignatureHeader)
	if !h.validSignature(body, sig) {
		h.logger.Warn("Webhook signature verification failed",
			zap.String("ip", c.RealIP()),
			zap.Bool("signature_present", sig != ""),
		)
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Code:    apperrors.ErrInvalidArgument,
			Message: "Webhook signature verification failed",
		})
	}

	var payload kycWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return respondError(c, h.logger, apperrors.NewAppError(apperrors.ErrInvalidArgument, "Error parsing webhook", err))
	}

	h.logger.Info("KYC webhook received",
		zap.String("kyc_id", payload.KycID),
		zap.String("status", payload.Status),
	)

	err = h.kycUseCase.ApplyVerifierUpdate(c.Request().Context(), dto.VerifierUpdateParams{
		VerifierKycID: payload.KycID,
		Status:        payload.Status,
		Details:       payload.VerificationDetails,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// validSignature 비밀키가 없으면 모든 요청을 거부합니다
func (h *WebhookHandler) validSignature(body []byte, signature string) bool {
	if h.webhookSecret == "" || signature == "" {
		return false
	}
	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")

	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, SignBody(h.webhookSecret, body))
}

// SignBody 본문의 HMAC-SHA256
func SignBody(secret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}
