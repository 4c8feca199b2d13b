package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	supportapp "game-store/internal/application/support"
)

// SupportHandler サポートチャット関連ハンドラー
type SupportHandler struct {
	supportService *supportapp.SupportApplicationService
}

// NewSupportHandler 新しいSupportHandlerを作成
func NewSupportHandler(supportService *supportapp.SupportApplicationService) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
	}
}

// SendMessage メッセージ送信ハンドラー
// @Summary サポートにメッセージを送信
// @Description メッセージを即座に追記し、遅延後に自動返信が届きます
// @Tags support
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SendMessageRequest true "メッセージ"
// @Success 202 {object} SendMessageResponse "受付済み"
// @Success 200 {object} SendMessageResponse "空白のみのため無視"
// @Router /support/messages [post]
func (h *SupportHandler) SendMessage(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	var reqBody SendMessageRequest
	if err := bindAndValidate(c, &reqBody); err != nil {
		return err
	}

	resp, err := h.supportService.SendMessage(c.Request().Context(), &supportapp.SendMessageRequest{
		SessionID: sessionID,
		Text:      reqBody.Text,
	})
	if err != nil {
		return err
	}

	if resp.Message == nil {
		return c.JSON(http.StatusOK, SendMessageResponse{})
	}
	msg := toMessageResponse(*resp.Message)
	return c.JSON(http.StatusAccepted, SendMessageResponse{
		Message:       &msg,
		ReplyExpected: resp.ReplyExpected,
		ReplyDelayMs:  resp.ReplyDelay.Milliseconds(),
	})
}

// GetTranscript 会話履歴取得ハンドラー
// @Summary サポートチャットの履歴を取得
// @Tags support
// @Produce json
// @Security Bearer
// @Success 200 {object} TranscriptResponse
// @Router /support/messages [get]
func (h *SupportHandler) GetTranscript(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	resp, err := h.supportService.GetTranscript(c.Request().Context(), &supportapp.GetTranscriptRequest{
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}

	messages := make([]MessageResponse, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		messages = append(messages, toMessageResponse(m))
	}
	return c.JSON(http.StatusOK, TranscriptResponse{Messages: messages})
}

func toMessageResponse(m supportapp.MessageView) MessageResponse {
	return MessageResponse{
		Text:   m.Text,
		Sender: m.Sender,
		SentAt: m.SentAt,
	}
}
