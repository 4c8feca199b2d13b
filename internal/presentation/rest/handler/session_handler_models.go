package handler

import "time"

// StartSessionResponse セッション開始レスポンス
// @Description セッション開始レスポンス
type StartSessionResponse struct {
	SessionID string `json:"session_id" example:"3f2b0c6e-8a7d-4d0b-9a51-7f3f8b2c1d10"`
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	TokenType string `json:"token_type" example:"Bearer"`
	ExpiresIn int64  `json:"expires_in" example:"86400"`
	Balance   int64  `json:"balance" example:"5000"`
}

// SessionResponse セッション概要レスポンス
// @Description セッション概要レスポンス
type SessionResponse struct {
	SessionID    string    `json:"session_id"`
	Balance      int64     `json:"balance" example:"5000"`
	ActivePromo  string    `json:"active_promo,omitempty" example:"GAME50"`
	LibraryCount int       `json:"library_count" example:"1"`
	MessageCount int       `json:"message_count" example:"1"`
	CreatedAt    time.Time `json:"created_at"`
}
