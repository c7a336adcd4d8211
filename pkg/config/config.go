// Package config는 애플리케이션 설정을 관리하는 패키지입니다.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 인터페이스는 설정 값에 액세스하기 위한 메서드를 정의합니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
}

// viperConfig는 viper를 사용하여 Config 인터페이스를 구현합니다.
type viperConfig struct {
	*viper.Viper
}

// 설정 디렉토리 경로
const configDir = "configs"

// Load는 서비스 이름에 해당하는 설정 파일을 로드합니다.
// 파일 탐색 순서: $CONFIG_PATH, configs/{APP_ENV}, configs/example.
// 환경 변수 {SERVICE}_{KEY} 가 파일 값을 덮어씁니다 (예: PLAYVAULT_DATABASE_HOST).
func Load(serviceName string, defaults map[string]interface{}) (Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	v.SetConfigType("yaml")
	v.SetConfigName(serviceName)

	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(filepath.Join(configDir, env))
	v.AddConfigPath(filepath.Join(configDir, "example"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || len(defaults) == 0 {
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
	}

	return &viperConfig{Viper: v}, nil
}
