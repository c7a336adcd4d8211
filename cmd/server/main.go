package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	handler "github.com/wekeepgrowing/playvault-backend/internal/adapter/handler/http"
	"github.com/wekeepgrowing/playvault-backend/internal/adapter/repository"
	"github.com/wekeepgrowing/playvault-backend/internal/config"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/db"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/http"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/http/middleware"
	appinit "github.com/wekeepgrowing/playvault-backend/internal/init"
	"go.uber.org/zap"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 2. 로거 가져오기
	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("PlayVault 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
	)

	if cfg.Webhook.Secret == "" {
		logger.Warn("webhook.secret이 비어 있어 모든 검증기 웹훅이 거부됩니다")
	}

	// 3. 인프라스트럭처 초기화
	infrastructure, err := db.NewInfrastructure(cfg)
	if err != nil {
		logger.Fatal("인프라스트럭처 초기화 실패", zap.Error(err))
	}
	defer infrastructure.Close()

	// 4. 레포지토리 초기화
	repositories := repository.InitRepositories(infrastructure.DB, infrastructure.RedisClient)

	// 5. 유스케이스 초기화
	useCases := appinit.NewUseCases(cfg, repositories, infrastructure, logger)

	// 6. HTTP 서버 생성
	httpServer, err := http.NewServer(http.Config{
		Port:         cfg.Server.HTTP.Port,
		Timeout:      cfg.Server.HTTP.Timeout,
		Debug:        cfg.Server.HTTP.Debug,
		AllowOrigins: cfg.Server.HTTP.AllowOrigins,
		BodyLimit:    cfg.Server.HTTP.BodyLimit,
		CookieSecret: cfg.Session.CookieSecret,
	}, logger)
	if err != nil {
		logger.Fatal("HTTP 서버 생성 실패", zap.Error(err))
	}

	// 7. 핸들러 및 라우트 등록
	cookie := middleware.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
	}
	handlers := http.Handlers{
		Auth:    handler.NewAuthHandler(logger, useCases.AuthUseCase, cookie),
		Kyc:     handler.NewKycHandler(logger, useCases.KycUseCase),
		Admin:   handler.NewAdminHandler(logger, useCases.KycUseCase, useCases.AdminUseCase),
		Webhook: handler.NewWebhookHandler(logger, useCases.KycUseCase, cfg.Webhook.Secret),
	}
	httpServer.RegisterRoutes(
		http.Routes(handlers),
		middleware.NewSessionMiddleware(useCases.SessionUseCase, cookie, logger),
		useCases.AdminGate,
	)

	// 8. 결과 안내 메일 구독 (SMTP 설정 시)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if useCases.Notifications != nil {
		go func() {
			if err := useCases.Notifications.Run(ctx); err != nil {
				logger.Error("KYC 알림 구독 종료", zap.Error(err))
			}
		}()
	}

	// 9. 서버 시작
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Error("HTTP 서버 종료", zap.Error(err))
		}
	}()

	// 10. 그레이스풀 종료를 위한 시그널 처리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("서버를 종료합니다...")

	cancel()
	if err := httpServer.Stop(); err != nil {
		logger.Error("HTTP 서버 종료 오류", zap.Error(err))
	}

	logger.Info("서버가 정상적으로 종료되었습니다")
}
