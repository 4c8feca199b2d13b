package handler

import "time"

// SendMessageRequest メッセージ送信リクエスト
// @Description メッセージ送信リクエスト（空白のみは無視される）
type SendMessageRequest struct {
	Text string `json:"text" validate:"max=2000" example:"hello"`
}

// MessageResponse メッセージ
// @Description サポートチャットのメッセージ
type MessageResponse struct {
	Text   string    `json:"text" example:"hello"`
	Sender string    `json:"sender" example:"user" enums:"user,support"`
	SentAt time.Time `json:"sent_at"`
}

// SendMessageResponse メッセージ送信レスポンス
// @Description メッセージ送信レスポンス
type SendMessageResponse struct {
	Message       *MessageResponse `json:"message,omitempty"`
	ReplyExpected bool             `json:"reply_expected"`
	ReplyDelayMs  int64            `json:"reply_delay_ms" example:"1000"`
}

// TranscriptResponse 会話履歴レスポンス
// @Description 会話履歴（追記順）
type TranscriptResponse struct {
	Messages []MessageResponse `json:"messages"`
}
