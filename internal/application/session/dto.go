package session

import "time"

// StartSessionResponse セッション開始レスポンス
type StartSessionResponse struct {
	SessionID string
	Token     string
	ExpiresIn int64  // 秒単位
	TokenType string // "Bearer"
	Balance   int64
}

// GetSessionRequest セッション取得リクエスト
type GetSessionRequest struct {
	SessionID string
}

// GetSessionResponse セッション取得レスポンス
type GetSessionResponse struct {
	SessionID    string
	Balance      int64
	ActivePromo  string // 適用なしの場合は空文字列
	LibraryCount int
	MessageCount int
	CreatedAt    time.Time
}

// EndSessionRequest セッション終了リクエスト
type EndSessionRequest struct {
	SessionID string
}
