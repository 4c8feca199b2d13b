package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"game-store/internal/infrastructure/auth"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// APIKeyMiddleware 管理API用のAPIキー認証ミドルウェア
// クライアントIPはEcho.IPExtractorで解決する
func APIKeyMiddleware(guard *auth.AdminGuard, logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientIP := c.RealIP()
			err := guard.Check(c.Request().Header.Get("X-API-Key"), clientIP)
			if err == nil {
				return next(c)
			}

			logger.Warn(c.Request().Context(), "Admin API access denied", map[string]interface{}{
				"ip":     clientIP,
				"reason": err.Error(),
			})

			// 無効化とIP制限は403、キーの問題は401
			if errors.Is(err, auth.ErrAdminDisabled) || errors.Is(err, auth.ErrIPNotAllowed) {
				return c.JSON(http.StatusForbidden, ErrorResponse{
					Error:   "forbidden",
					Message: err.Error(),
				})
			}
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: err.Error(),
			})
		}
	}
}
