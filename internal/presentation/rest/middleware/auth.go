package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"game-store/internal/infrastructure/auth"
	"game-store/internal/infrastructure/config"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// SessionIDKey echo.Contextに保存するセッションIDのキー
const SessionIDKey = "session_id"

// SessionID 認証済みセッションIDを返す（未認証なら空文字列）
func SessionID(c echo.Context) string {
	id, _ := c.Get(SessionIDKey).(string)
	return id
}

// AuthMiddleware Bearerトークンを検証してセッションIDをコンテキストに設定する
func AuthMiddleware(cfg *config.JWTConfig, logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID, err := auth.Authenticate(cfg, c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				logger.Warn(c.Request().Context(), "Authentication failed", map[string]interface{}{
					"path":  c.Request().URL.Path,
					"error": err.Error(),
				})
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Error:   "unauthorized",
					Message: auth.Reason(err),
				})
			}

			c.Set(SessionIDKey, sessionID)
			return next(c)
		}
	}
}
