package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ZapGormLogger는 gorm의 logger.Interface를 구현하며, GORM 로그를 zap으로 기록합니다.
type ZapGormLogger struct {
	logger *zap.Logger
	// LogLevel은 기록할 로그의 최소 레벨입니다 (Silent, Error, Warn, Info).
	LogLevel gormlogger.LogLevel
	// SlowThreshold보다 오래 걸린 쿼리는 Warn으로 기록합니다. 0이면 사용하지 않습니다.
	SlowThreshold time.Duration
	// IgnoreRecordNotFoundError가 true이면 gorm.ErrRecordNotFound는 기록하지 않습니다.
	IgnoreRecordNotFoundError bool
}

// NewGormLogger는 지정한 옵션을 가진 ZapGormLogger를 생성합니다.
func NewGormLogger(logger *zap.Logger, level gormlogger.LogLevel, slowThreshold time.Duration, ignoreRecordNotFoundError bool) *ZapGormLogger {
	return &ZapGormLogger{
		logger:                    logger.Named("gorm"),
		LogLevel:                  level,
		SlowThreshold:             slowThreshold,
		IgnoreRecordNotFoundError: ignoreRecordNotFoundError,
	}
}

// LogMode는 로그 레벨을 변경한 새 인스턴스를 반환합니다.
func (z *ZapGormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *z
	newLogger.LogLevel = level
	return &newLogger
}

func (z *ZapGormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if z.LogLevel >= gormlogger.Info {
		z.logger.Sugar().Infof(msg, data...)
	}
}

func (z *ZapGormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if z.LogLevel >= gormlogger.Warn {
		z.logger.Sugar().Warnf(msg, data...)
	}
}

func (z *ZapGormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if z.LogLevel >= gormlogger.Error {
		z.logger.Sugar().Errorf(msg, data...)
	}
}

// Trace는 쿼리 실행 시간, SQL, 영향받은 행 수를 기록합니다.
func (z *ZapGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if z.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.String("sql", sql),
		zap.Int64("rows", rows),
	}

	switch {
	case err != nil && z.LogLevel >= gormlogger.Error &&
		(!z.IgnoreRecordNotFoundError || !errors.Is(err, gorm.ErrRecordNotFound)):
		z.logger.Error("GORM 쿼리 오류", append(fields, zap.Error(err))...)
	case z.SlowThreshold != 0 && elapsed > z.SlowThreshold && z.LogLevel >= gormlogger.Warn:
		z.logger.Warn("GORM 슬로우 쿼리", append(fields, zap.Duration("threshold", z.SlowThreshold))...)
	case z.LogLevel >= gormlogger.Info:
		z.logger.Debug("GORM 쿼리", fields...)
	}
}
