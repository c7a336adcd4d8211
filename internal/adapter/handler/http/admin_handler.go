package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
)

// AdminHandler 관리자 전용 핸들러
type AdminHandler struct {
	logger       *zap.Logger
	kycUseCase   interfaces.KycUseCase
	adminUseCase interfaces.AdminUseCase
}

// NewAdminHandler 새 관리자 핸들러 생성
func NewAdminHandler(logger *zap.Logger, kycUC interfaces.KycUseCase, adminUC interfaces.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		logger:       logger,
		kycUseCase:   kycUC,
		adminUseCase: adminUC,
	}
}

type updateKycRequest struct {
	Status          string  `json:"status" validate:"required,oneof=not_submitted pending verified rejected"`
	RejectionReason *string `json:"rejectionReason" validate:"omitempty,max=500"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type kycEventResponse struct {
	Source     entity.KycEventSource  `json:"source"`
	FromStatus entity.KycStatus       `json:"fromStatus"`
	ToStatus   entity.KycStatus       `json:"toStatus"`
	Accepted   bool                   `json:"accepted"`
	Reason     *string                `json:"reason,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}

type adminKycResponse struct {
	kycRecordResponse
	Events []kycEventResponse `json:"events"`
}

type loginAttemptResponse struct {
	Username      string    `json:"username"`
	IPAddress     string    `json:"ipAddress"`
	UserAgent     string    `json:"userAgent"`
	Success       bool      `json:"success"`
	Location      *string   `json:"location,omitempty"`
	FailureReason *string   `json:"failureReason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GetKyc handles GET /api/admin/users/:id/kyc
func (h *AdminHandler) GetKyc(c echo.Context) error {
	view, err := h.kycUseCase.AdminGet(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp := adminKycResponse{
		kycRecordResponse: toKycRecordResponse(view.Record),
		Events:            make([]kycEventResponse, 0, len(view.Events)),
	}
	for _, e := range view.Events {
		resp.Events = append(resp.Events, kycEventResponse{
			Source:     e.Source,
			FromStatus: e.FromStatus,
			ToStatus:   e.ToStatus,
			Accepted:   e.Accepted,
			Reason:     e.Reason,
			Details:    e.Details,
			CreatedAt:  e.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateKyc handles PUT /api/admin/users/:id/kyc
func (h *AdminHandler) UpdateKyc(c echo.Context) error {
	var req updateKycRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	record, err := h.kycUseCase.AdminOverride(c.Request().Context(), middleware.CurrentSession(c), dto.AdminOverrideParams{
		UserID: c.Param("id"),
		Status: entity.KycStatus(req.Status),
		Reason: req.RejectionReason,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, toKycRecordResponse(record))
}

// ReconcileKyc handles POST /api/admin/users/:id/kyc/reconcile
func (h *AdminHandler) ReconcileKyc(c echo.Context) error {
	result, err := h.kycUseCase.Reconcile(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ChangeRole handles PUT /api/admin/users/:id/role
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	user, err := h.adminUseCase.ChangeRole(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"), entity.Role(req.Role))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// RevokeSessions handles DELETE /api/admin/users/:id/sessions
func (h *AdminHandler) RevokeSessions(c echo.Context) error {
	revoked, err := h.adminUseCase.RevokeSessions(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"revoked": revoked})
}

// ListLoginAttempts handles GET /api/admin/users/:id/login-attempts?limit=
func (h *AdminHandler) ListLoginAttempts(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return respondError(c, h.logger, apperrors.NewAppError(apperrors.ErrInvalidArgument, "limit must be a positive integer", err))
		}
		limit = n
	}

	attempts, err := h.adminUseCase.ListLoginAttempts(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"), limit)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp := make([]loginAttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		resp = append(resp, loginAttemptResponse{
			Username:      a.Username,
			IPAddress:     a.IPAddress,
			UserAgent:     a.UserAgent,
			Success:       a.Success,
			Location:      a.Location,
			FailureReason: a.FailureReason,
			CreatedAt:     a.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
