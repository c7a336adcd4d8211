package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/entity"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/playvault-backend/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// AuthHandler 회원가입/로그인/로그아웃 HTTP 핸들러
type AuthHandler struct {
	logger      *zap.Logger
	authUseCase interfaces.AuthUseCase
	cookie      middleware.SessionCookie
}

// NewAuthHandler 새 인증 핸들러 생성
func NewAuthHandler(logger *zap.Logger, authUC interfaces.AuthUseCase, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		authUseCase: authUC,
		cookie:      cookie,
	}
}

type registerRequest struct {
	Username    string  `json:"username" validate:"required,max=100"`
	Password    string  `json:"password" validate:"required,maxbytes=72"`
	Email       *string `json:"email" validate:"omitempty,email,max=250"`
	DisplayName *string `json:"displayName" validate:"omitempty,max=100"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       *string    `json:"email"`
	DisplayName *string    `json:"displayName"`
	Role        string     `json:"role,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	user, session, err := h.authUseCase.Register(c.Request().Context(), dto.RegisterParams{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Client:      clientInfo(c),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.cookie.Issue(c, session); err != nil {
		h.logger.Error("세션 쿠키 발급 실패", zap.String("user_id", user.ID), zap.Error(err))
	}

	return c.JSON(http.StatusCreated, userResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	user, session, err := h.authUseCase.Login(c.Request().Context(), dto.LoginParams{
		Username: req.Username,
		Password: req.Password,
		Client:   clientInfo(c),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.cookie.Issue(c, session); err != nil {
		h.logger.Error("세션 쿠키 발급 실패", zap.String("user_id", user.ID), zap.Error(err))
	}

	return c.JSON(http.StatusOK, userResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUseCase.Logout(c.Request().Context(), middleware.CurrentSession(c)); err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.cookie.Clear(c); err != nil {
		h.logger.Warn("세션 쿠키 삭제 실패", zap.Error(err))
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.authUseCase.CurrentUser(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *entity.User) userResponse {
	createdAt := user.CreatedAt
	return userResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
		CreatedAt:   &createdAt,
	}
}
