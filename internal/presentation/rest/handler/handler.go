package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	restmiddleware "game-store/internal/presentation/rest/middleware"
)

// ErrorResponse エラーレスポンス
// @Description エラーレスポンス
type ErrorResponse = restmiddleware.ErrorResponse

// requireSessionID トークンから解決済みのセッションIDを取得
func requireSessionID(c echo.Context) (string, error) {
	sessionID := restmiddleware.SessionID(c)
	if sessionID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "session_id not found in token")
	}
	return sessionID, nil
}

// bindAndValidate リクエストボディをバインドして検証
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(v)
}
