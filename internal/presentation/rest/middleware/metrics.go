package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// MetricsMiddleware メトリクス記録ミドルウェア
func MetricsMiddleware(metrics *otelinfra.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			ctx := c.Request().Context()
			method := c.Request().Method

			err := next(c)

			// ルーティング後のパステンプレートで集計する
			path := c.Path()
			metrics.RecordRequest(ctx, method, path)
			metrics.RecordResponseTime(ctx, method, path, time.Since(start).Seconds())

			// エラーハンドラーがレスポンスに変換した後のステータスで判定
			if status := c.Response().Status; status >= 400 {
				errorType := "client_error"
				if status >= 500 {
					errorType = "server_error"
				}
				metrics.RecordError(ctx, errorType)
			}

			return err
		}
	}
}
