package config

import (
	"time"

	"github.com/wekeepgrowing/playvault-backend/pkg/config"
	"github.com/wekeepgrowing/playvault-backend/pkg/logger"
	"go.uber.org/zap"
)

// Config playvault 서비스 설정 구조체
type Config struct {
	// 서비스 기본 정보
	Service struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"service"`

	// HTTP 서버 설정
	Server struct {
		HTTP struct {
			Port         string   `yaml:"port"`
			Timeout      int      `yaml:"timeout"`
			Debug        bool     `yaml:"debug"`
			AllowOrigins []string `yaml:"allow_origins"`
			BodyLimit    string   `yaml:"body_limit"`
		} `yaml:"http"`
	} `yaml:"server"`

	// 데이터베이스 설정
	Database struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Name            string `yaml:"name"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		SSLMode         string `yaml:"ssl_mode"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
		AutoMigrate     bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	// Redis 설정
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	// 세션 설정
	Session struct {
		CookieName   string        `yaml:"cookie_name"`
		CookieSecret string        `yaml:"cookie_secret"`
		TTL          time.Duration `yaml:"ttl"`
		Secure       bool          `yaml:"secure"`
	} `yaml:"session"`

	// 인증 설정
	Auth struct {
		PasswordMinLength int `yaml:"password_min_length"`
		HashCost          int `yaml:"hash_cost"`
	} `yaml:"auth"`

	// 외부 KYC 검증기 설정
	Verifier struct {
		Enabled     bool          `yaml:"enabled"`
		BaseURL     string        `yaml:"base_url"`
		APIKey      string        `yaml:"api_key"`
		Secret      string        `yaml:"secret"`
		RedirectURL string        `yaml:"redirect_url"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"verifier"`

	// 검증기 웹훅 설정
	Webhook struct {
		Secret string `yaml:"secret"`
	} `yaml:"webhook"`

	// GeoIP 설정 (DB 경로가 없으면 비활성)
	GeoIP struct {
		CityDBPath string `yaml:"city_db_path"`
	} `yaml:"geoip"`

	// Email 설정 (SMTP 호스트가 없으면 비활성)
	Email struct {
		SenderEmail string `yaml:"sender_email"`
		SenderName  string `yaml:"sender_name"`
		SMTPHost    string `yaml:"smtp_host"`
		SMTPPort    int    `yaml:"smtp_port"`
		SMTPUser    string `yaml:"smtp_user"`
		SMTPPass    string `yaml:"smtp_pass"`
	} `yaml:"email"`

	// 로그 설정
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	// 로거 인스턴스
	Logger *zap.Logger
}

// 파일에 값이 없을 때 사용하는 기본값
var defaults = map[string]interface{}{
	"service.name":               "playvault",
	"server.http.port":           "8080",
	"server.http.timeout":        30,
	"server.http.body_limit":     "2M",
	"database.host":              "localhost",
	"database.port":              5432,
	"database.ssl_mode":          "disable",
	"database.max_open_conns":    20,
	"database.max_idle_conns":    5,
	"database.conn_max_lifetime": 300,
	"database.auto_migrate":      true,
	"redis.host":                 "localhost",
	"redis.port":                 6379,
	"session.cookie_name":        "playvault_session",
	"session.ttl":                "24h",
	"auth.password_min_length":   6,
	"auth.hash_cost":             10,
	"verifier.timeout":           "10s",
	"email.smtp_port":            587,
	"email.sender_name":          "PlayVault",
	"log.level":                  "info",
	"log.format":                 "json",
	"log.output":                 "stdout",
}

// Load 설정 파일 로드
func Load() (*Config, error) {
	cfg, err := config.Load("playvault", defaults)
	if err != nil {
		return nil, err
	}

	appConfig := FromSource(cfg)

	appConfig.Logger, err = logger.NewZapLogger(logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		FilePath:    appConfig.Log.FilePath,
		Development: appConfig.Server.HTTP.Debug,
		Service:     appConfig.Service.Name,
	})
	if err != nil {
		return nil, err
	}

	return appConfig, nil
}

// FromSource 설정 소스에서 Config 구조체를 채웁니다
func FromSource(cfg config.Config) *Config {
	appConfig := &Config{}

	// 서비스 정보
	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")
	appConfig.Service.BaseURL = cfg.GetString("service.base_url")

	// HTTP 서버 설정
	appConfig.Server.HTTP.Port = cfg.GetString("server.http.port")
	appConfig.Server.HTTP.Timeout = cfg.GetInt("server.http.timeout")
	appConfig.Server.HTTP.Debug = cfg.GetBool("server.http.debug")
	appConfig.Server.HTTP.AllowOrigins = cfg.GetStringSlice("server.http.allow_origins")
	appConfig.Server.HTTP.BodyLimit = cfg.GetString("server.http.body_limit")

	// 데이터베이스 설정
	appConfig.Database.Host = cfg.GetString("database.host")
	appConfig.Database.Port = cfg.GetInt("database.port")
	appConfig.Database.Name = cfg.GetString("database.name")
	appConfig.Database.User = cfg.GetString("database.user")
	appConfig.Database.Password = cfg.GetString("database.password")
	appConfig.Database.SSLMode = cfg.GetString("database.ssl_mode")
	appConfig.Database.MaxOpenConns = cfg.GetInt("database.max_open_conns")
	appConfig.Database.MaxIdleConns = cfg.GetInt("database.max_idle_conns")
	appConfig.Database.ConnMaxLifetime = cfg.GetInt("database.conn_max_lifetime")
	appConfig.Database.AutoMigrate = cfg.GetBool("database.auto_migrate")

	// Redis 설정
	appConfig.Redis.Host = cfg.GetString("redis.host")
	appConfig.Redis.Port = cfg.GetInt("redis.port")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")

	// 세션 설정
	appConfig.Session.CookieName = cfg.GetString("session.cookie_name")
	appConfig.Session.CookieSecret = cfg.GetString("session.cookie_secret")
	appConfig.Session.TTL = cfg.GetDuration("session.ttl")
	appConfig.Session.Secure = cfg.GetBool("session.secure")

	// 인증 설정
	appConfig.Auth.PasswordMinLength = cfg.GetInt("auth.password_min_length")
	appConfig.Auth.HashCost = cfg.GetInt("auth.hash_cost")

	// 검증기 설정
	appConfig.Verifier.Enabled = cfg.GetBool("verifier.enabled")
	appConfig.Verifier.BaseURL = cfg.GetString("verifier.base_url")
	appConfig.Verifier.APIKey = cfg.GetString("verifier.api_key")
	appConfig.Verifier.Secret = cfg.GetString("verifier.secret")
	appConfig.Verifier.RedirectURL = cfg.GetString("verifier.redirect_url")
	appConfig.Verifier.Timeout = cfg.GetDuration("verifier.timeout")
	appConfig.Webhook.Secret = cfg.GetString("webhook.secret")

	appConfig.GeoIP.CityDBPath = cfg.GetString("geoip.city_db_path")

	// 이메일 설정
	appConfig.Email.SenderEmail = cfg.GetString("email.sender_email")
	appConfig.Email.SenderName = cfg.GetString("email.sender_name")
	appConfig.Email.SMTPHost = cfg.GetString("email.smtp_host")
	appConfig.Email.SMTPPort = cfg.GetInt("email.smtp_port")
	appConfig.Email.SMTPUser = cfg.GetString("email.smtp_user")
	appConfig.Email.SMTPPass = cfg.GetString("email.smtp_pass")

	// 로그 설정
	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")
	appConfig.Log.FilePath = cfg.GetString("log.file_path")

	return appConfig
}
