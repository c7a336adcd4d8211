package db

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wekeepgrowing/playvault-backend/internal/config"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/service"
	"github.com/wekeepgrowing/playvault-backend/internal/domain/verifier"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/geo"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/mail"
	"github.com/wekeepgrowing/playvault-backend/internal/infrastructure/verifier/sunbase"
	"github.com/wekeepgrowing/playvault-backend/pkg/messaging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infrastructure 인프라스트럭처 구조체.
// Locator, SMTPClient, Verifier는 설정이 없으면 비활성(nil 또는 no-op)입니다.
type Infrastructure struct {
	DB             *gorm.DB
	RedisClient    *redis.Client
	Bus            *messaging.RedisBus
	Locator        service.Locator
	EmailTemplates *mail.EmailTemplateService
	SMTPClient     *mail.SMTPClient
	Verifier       verifier.Client

	geoLocator *geo.GeoIPLocator
	logger     *zap.Logger
}

// NewInfrastructure 인프라스트럭처 초기화
func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	logger := cfg.Logger
	infrastructure := &Infrastructure{
		Locator: service.NoopLocator{},
		logger:  logger,
	}

	// 데이터베이스 연결 설정
	dbConfig := Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Name:            cfg.Database.Name,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		Debug:           cfg.Server.HTTP.Debug,
	}

	var err error
	infrastructure.DB, err = NewPostgresDB(dbConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(infrastructure.DB, logger); err != nil {
			infrastructure.Close()
			return nil, fmt.Errorf("마이그레이션 실패: %w", err)
		}
	}

	// Redis 클라이언트 초기화 (세션 저장소 + 이벤트 버스 공유)
	infrastructure.RedisClient, err = NewRedisClient(RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		infrastructure.Close()
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}
	infrastructure.Bus = messaging.NewRedisBus(infrastructure.RedisClient)

	// GeoIP (선택)
	if cfg.GeoIP.CityDBPath != "" {
		locator, err := geo.NewGeoIPLocator(cfg.GeoIP.CityDBPath)
		if err != nil {
			logger.Warn("GeoIP 데이터베이스를 열 수 없어 위치 기록을 생략합니다",
				zap.String("path", cfg.GeoIP.CityDBPath),
				zap.Error(err),
			)
		} else {
			infrastructure.geoLocator = locator
			infrastructure.Locator = locator
		}
	}

	// 이메일 (선택)
	infrastructure.EmailTemplates = mail.NewEmailTemplateService(cfg.Service.BaseURL, cfg.Email.SenderName)
	if cfg.Email.SMTPHost != "" {
		infrastructure.SMTPClient = mail.NewSMTPClient(mail.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUser,
			Password: cfg.Email.SMTPPass,
			From:     cfg.Email.SenderEmail,
			FromName: cfg.Email.SenderName,
		}, logger)
	}

	// 외부 KYC 검증기 (선택)
	if cfg.Verifier.Enabled {
		infrastructure.Verifier = sunbase.NewClient(sunbase.Config{
			BaseURL:     cfg.Verifier.BaseURL,
			APIKey:      cfg.Verifier.APIKey,
			Secret:      cfg.Verifier.Secret,
			RedirectURL: cfg.Verifier.RedirectURL,
			Timeout:     cfg.Verifier.Timeout,
		}, logger)
	}

	logger.Info("인프라스트럭처 초기화 완료",
		zap.String("database", "PostgreSQL"),
		zap.String("redis", "Redis"),
		zap.Bool("geoip", infrastructure.geoLocator != nil),
		zap.Bool("smtp", infrastructure.SMTPClient != nil),
		zap.Bool("verifier", infrastructure.Verifier != nil),
	)

	return infrastructure, nil
}

// Close 모든 연결 종료. 첫 번째 오류를 반환합니다.
func (i *Infrastructure) Close() error {
	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if i.geoLocator != nil {
		record(i.geoLocator.Close())
	}

	if i.RedisClient != nil {
		if err := i.RedisClient.Close(); err != nil {
			record(fmt.Errorf("Redis 연결 종료 실패: %w", err))
		}
	}

	if i.DB != nil {
		sqlDB, err := i.DB.DB()
		if err != nil {
			record(fmt.Errorf("DB 인스턴스 획득 실패: %w", err))
		} else if err := sqlDB.Close(); err != nil {
			record(fmt.Errorf("데이터베이스 연결 종료 실패: %w", err))
		}
	}

	i.logger.Info("모든 인프라스트럭처 연결 종료됨")
	return firstErr
}
