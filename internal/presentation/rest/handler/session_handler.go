package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	sessionapp "game-store/internal/application/session"
)

// SessionHandler セッション関連ハンドラー
type SessionHandler struct {
	sessionService *sessionapp.SessionApplicationService
}

// NewSessionHandler 新しいSessionHandlerを作成
func NewSessionHandler(sessionService *sessionapp.SessionApplicationService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// StartSession セッション開始ハンドラー
// @Summary セッションを開始
// @Description 初期残高のウォレットとサポートチャットを持つ新しいセッションを開始し、トークンを発行します
// @Tags session
// @Produce json
// @Success 201 {object} StartSessionResponse "セッション開始成功"
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c echo.Context) error {
	resp, err := h.sessionService.StartSession(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, StartSessionResponse{
		SessionID: resp.SessionID,
		Token:     resp.Token,
		TokenType: resp.TokenType,
		ExpiresIn: resp.ExpiresIn,
		Balance:   resp.Balance,
	})
}

// GetSession セッション概要取得ハンドラー
// @Summary セッション概要を取得
// @Tags session
// @Produce json
// @Security Bearer
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /session [get]
func (h *SessionHandler) GetSession(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	resp, err := h.sessionService.GetSession(c.Request().Context(), &sessionapp.GetSessionRequest{
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SessionResponse{
		SessionID:    resp.SessionID,
		Balance:      resp.Balance,
		ActivePromo:  resp.ActivePromo,
		LibraryCount: resp.LibraryCount,
		MessageCount: resp.MessageCount,
		CreatedAt:    resp.CreatedAt,
	})
}

// EndSession セッション終了ハンドラー
// @Summary セッションを終了
// @Description ウォレット、ライブラリ、チャット履歴を破棄します
// @Tags session
// @Security Bearer
// @Success 204
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /session [delete]
func (h *SessionHandler) EndSession(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	if err := h.sessionService.EndSession(c.Request().Context(), &sessionapp.EndSessionRequest{
		SessionID: sessionID,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
