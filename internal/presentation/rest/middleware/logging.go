package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// LoggingMiddleware リクエストごとに1行のアクセスログを出す。
// レベルはステータスコードで決まる（5xx: ERROR, 4xx: WARN, それ以外: INFO）
func LoggingMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			req := c.Request()
			status := responseStatus(c, err)

			fields := map[string]interface{}{
				"method":      req.Method,
				"path":        req.URL.Path,
				"route":       c.Path(),
				"status_code": status,
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_addr": c.RealIP(),
				"user_agent":  req.UserAgent(),
				"bytes_out":   c.Response().Size,
			}
			if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				fields["request_id"] = id
			}
			if sessionID := SessionID(c); sessionID != "" {
				fields["session_id"] = sessionID
			}

			ctx := req.Context()
			switch {
			case err != nil && status >= http.StatusInternalServerError:
				logger.Error(ctx, "HTTP request", err, fields)
			case status >= http.StatusInternalServerError:
				logger.Log(ctx, otelinfra.LogLevelError, "HTTP request", fields)
			case status >= http.StatusBadRequest:
				logger.Warn(ctx, "HTTP request", fields)
			default:
				logger.Info(ctx, "HTTP request", fields)
			}
			return err
		}
	}
}

// responseStatus ハンドラーがエラーを返した場合はクライアントに返るはずのステータスを推定する
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
