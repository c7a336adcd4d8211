package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
)

// KycHandler 사용자 KYC 제출/조회 핸들러
type KycHandler struct {
	logger     *zap.Logger
	kycUseCase interfaces.KycUseCase
}

// NewKycHandler 새 KYC 핸들러 생성
func NewKycHandler(logger *zap.Logger, kycUC interfaces.KycUseCase) *KycHandler {
	return &KycHandler{
		logger:     logger,
		kycUseCase: kycUC,
	}
}

type submitKycRequest struct {
	FullName         string  `json:"fullName" validate:"required,min=2,max=200"`
	DateOfBirth      string  `json:"dateOfBirth" validate:"required"`
	DocumentType     string  `json:"documentType" validate:"required,oneof=passport driver_license id_card"`
	DocumentNumber   string  `json:"documentNumber" validate:"required,min=4,max=100"`
	DocumentImageURL *string `json:"documentImageUrl" validate:"omitempty,http_url"`
	SelfieImageURL   *string `json:"selfieImageUrl" validate:"omitempty,http_url"`
}

type submitKycResponse struct {
	ID              string           `json:"id"`
	Status          entity.KycStatus `json:"status"`
	Message         string           `json:"message"`
	VerificationURL *string          `json:"verificationUrl,omitempty"`
}

// kycRecordResponse 관리자 화면용 KYC 기록
type kycRecordResponse struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	FullName         string           `json:"fullName"`
	DateOfBirth      string           `json:"dateOfBirth"`
	DocumentType     string           `json:"documentType"`
	DocumentNumber   string           `json:"documentNumber"`
	DocumentImageURL *string          `json:"documentImageUrl"`
	SelfieImageURL   *string          `json:"selfieImageUrl"`
	Status           entity.KycStatus `json:"status"`
	RejectionReason  *string          `json:"rejectionReason"`
	VerifierKycID    *string          `json:"verifierKycId"`
	VerificationURL  *string          `json:"verificationUrl"`
	SubmittedAt      time.Time        `json:"submittedAt"`
	VerifiedAt       *time.Time       `json:"verifiedAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// Submit handles POST /api/kyc/submit
func (h *KycHandler) Submit(c echo.Context) error {
	var req submitKycRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return respondError(c, h.logger,
			apperrors.NewAppError(apperrors.ErrInvalidArgument, "dateOfBirth must be RFC3339 or YYYY-MM-DD", err))
	}

	record, err := h.kycUseCase.Submit(c.Request().Context(), middleware.CurrentSession(c), dto.SubmitKycParams{
		FullName:         req.FullName,
		DateOfBirth:      dob,
		DocumentType:     entity.DocumentType(req.DocumentType),
		DocumentNumber:   req.DocumentNumber,
		DocumentImageURL: req.DocumentImageURL,
		SelfieImageURL:   req.SelfieImageURL,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, submitKycResponse{
		ID:              record.ID,
		Status:          record.Status,
		Message:         "KYC verification submitted successfully",
		VerificationURL: record.VerificationURL,
	})
}

// Status handles GET /api/kyc/status
func (h *KycHandler) Status(c echo.Context) error {
	result, err := h.kycUseCase.Status(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, result)
}

func toKycRecordResponse(record *entity.KycRecord) kycRecordResponse {
	return kycRecordResponse{
		ID:               record.ID,
		UserID:           record.UserID,
		FullName:         record.FullName,
		DateOfBirth:      record.DateOfBirth.Format(time.DateOnly),
		DocumentType:     string(record.DocumentType),
		DocumentNumber:   record.DocumentNumber,
		DocumentImageURL: record.DocumentImageURL,
		SelfieImageURL:   record.SelfieImageURL,
		Status:           record.Status,
		RejectionReason:  record.RejectionReason,
		VerifierKycID:    record.VerifierKycID,
		VerificationURL:  record.VerificationURL,
		SubmittedAt:      record.SubmittedAt,
		VerifiedAt:       record.VerifiedAt,
		UpdatedAt:        record.UpdatedAt,
	}
}
