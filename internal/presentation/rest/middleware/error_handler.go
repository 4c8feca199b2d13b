package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"game-store/internal/domain/catalog"
	"game-store/internal/domain/promo"
	"game-store/internal/domain/session"
	"game-store/internal/domain/transaction"
	"game-store/internal/domain/wallet"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// domainError ドメインエラーとHTTPステータスの対応
type domainError struct {
	target error
	status int
	code   string
}

// 上から順に評価する
var domainErrors = []domainError{
	{wallet.ErrInsufficientFunds, http.StatusConflict, "insufficient_funds"},
	{wallet.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
	{wallet.ErrAmountTooLarge, http.StatusBadRequest, "amount_too_large"},
	{wallet.ErrBalanceOutOfRange, http.StatusUnprocessableEntity, "balance_out_of_range"},
	{session.ErrAlreadyOwned, http.StatusConflict, "already_owned"},
	{session.ErrSessionNotFound, http.StatusUnauthorized, "session_not_found"},
	{session.ErrInvalidSessionID, http.StatusBadRequest, "invalid_session_id"},
	{promo.ErrPromoNotFound, http.StatusNotFound, "promo_not_found"},
	{promo.ErrInvalidCode, http.StatusBadRequest, "invalid_promo_code"},
	{catalog.ErrItemNotFound, http.StatusNotFound, "item_not_found"},
	{catalog.ErrInvalidGenre, http.StatusBadRequest, "invalid_genre"},
	{catalog.ErrInvalidPriceBucket, http.StatusBadRequest, "invalid_price_bucket"},
	{transaction.ErrTransactionNotFound, http.StatusNotFound, "transaction_not_found"},
	{transaction.ErrInvalidTransaction, http.StatusBadRequest, "invalid_transaction"},
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}
			return handleError(c, err, logger)
		}
	}
}

// validationMessage バリデーションタグごとのメッセージ
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	for _, de := range domainErrors {
		if errors.Is(err, de.target) {
			logger.Warn(ctx, "Request rejected", map[string]interface{}{
				"code":  de.code,
				"error": err.Error(),
			})
			return c.JSON(de.status, ErrorResponse{
				Error:   de.code,
				Message: de.target.Error(),
			})
		}
	}

	// リクエストボディのバリデーションエラー
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Warn(ctx, "Validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		details := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			details[fe.Field()] = validationMessage(fe)
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "validation failed",
			Details: details,
		})
	}

	// EchoのHTTPエラー
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     httpErr.Message,
		})
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:   http.StatusText(httpErr.Code),
			Message: message,
		})
	}

	// 予期しないエラー
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_server_error",
		Message: "An unexpected error occurred",
	})
}
