package support

import "time"

// SendMessageRequest メッセージ送信リクエスト
type SendMessageRequest struct {
	SessionID string
	Text      string
}

// MessageView メッセージ表示用
type MessageView struct {
	Text   string
	Sender string
	SentAt time.Time
}

// SendMessageResponse メッセージ送信レスポンス。空白のみの入力ではMessageがnilになる
type SendMessageResponse struct {
	Message       *MessageView
	ReplyExpected bool
	ReplyDelay    time.Duration
}

// GetTranscriptRequest 会話履歴取得リクエスト
type GetTranscriptRequest struct {
	SessionID string
}

// GetTranscriptResponse 会話履歴取得レスポンス
type GetTranscriptResponse struct {
	Messages []MessageView
}
