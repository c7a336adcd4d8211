// File: pkg/logger/echo_logger.go
package logger

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	apperrors "github.com/wekeepgrowing/playvault-backend/pkg/errors"
	"go.uber.org/zap"
)

// 로그에 남기되 값은 가려야 하는 헤더
var maskedHeaders = map[string]bool{
	"Cookie":               true,
	"Authorization":        true,
	"X-Verifier-Signature": true,
}

// NewEchoRequestLogger는 Echo 서버를 위한 Request Logger를 생성합니다.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	config := middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		BeforeNextFunc: func(c echo.Context) {
			c.Set("request-start-time", time.Now())
		},
		HandleError: true,

		LogLatency:       true,
		LogProtocol:      true,
		LogRemoteIP:      true,
		LogMethod:        true,
		LogURI:           true,
		LogRoutePath:     true,
		LogRequestID:     true,
		LogUserAgent:     true,
		LogStatus:        true,
		LogError:         true,
		LogContentLength: true,
		LogResponseSize:  true,
		LogHeaders:       []string{"Content-Type", "Cookie", "X-Verifier-Signature"},

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.protocol", v.Protocol),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.String("request.request_id", v.RequestID),
				zap.String("request.content_length", v.ContentLength),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
				zap.Int64("response.response_size", v.ResponseSize),
			}

			// 세션 미들웨어가 설정한 사용자 ID
			if userID, ok := c.Get("user_id").(string); ok && userID != "" {
				fields = append(fields, zap.String("request.user_id", userID))
			}

			if len(v.Headers) > 0 {
				headers := make(map[string]string, len(v.Headers))
				for k, values := range v.Headers {
					if len(values) == 0 {
						continue
					}
					if maskedHeaders[k] {
						headers[k] = "[MASKED]"
					} else {
						headers[k] = values[0]
					}
				}
				fields = append(fields, zap.Any("request.headers", headers))
			}

			switch {
			case v.Error != nil:
				logger.Error("Request failed", append(fields, zap.Error(v.Error))...)
			case v.Status >= 500:
				logger.Error("Server error", fields...)
			case v.Status >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
			return nil
		},
	}

	return middleware.RequestLoggerWithConfig(config)
}

// WithEchoLogger Echo에 zap 기반 에러 핸들러를 설정합니다.
// 모든 에러는 {"code", "message"} 형태로 응답합니다.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		status, body := apperrors.ToResponse(err)

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.String("ip", c.RealIP()),
		}
		apperrors.LogError(logger, err, "HTTP error", fields...)

		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Error("Failed to send error response", zap.Error(err))
		}
	}
}
