package db

import (
	"fmt"
	"time"

	"github.com/wekeepgrowing/playvault-backend/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config 데이터베이스 설정
type Config struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Debug           bool
}

// DSN PostgreSQL 접속 문자열
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// NewPostgresDB PostgreSQL 데이터베이스 연결을 생성합니다.
func NewPostgresDB(config Config, zapLogger *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if config.Debug {
		level = gormlogger.Info
	}

	gormLogger := logger.NewGormLogger(
		zapLogger,
		level,
		time.Second, // Slow SQL 임계값
		true,        // ErrRecordNotFound 무시
	)

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	// 연결 풀 설정
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("SQL DB 인스턴스 획득 실패: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("데이터베이스 핑 실패: %w", err)
	}

	zapLogger.Info("데이터베이스 연결 성공",
		zap.String("host", config.Host),
		zap.Int("port", config.Port),
		zap.String("database", config.Name),
		zap.Int("max_open_conns", config.MaxOpenConns),
		zap.Int("max_idle_conns", config.MaxIdleConns),
		zap.Duration("conn_max_lifetime", config.ConnMaxLifetime),
	)

	return db, nil
}
