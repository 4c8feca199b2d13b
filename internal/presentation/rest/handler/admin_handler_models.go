package handler

// SessionCountResponse セッション数レスポンス
// @Description 有効なセッション数
type SessionCountResponse struct {
	Sessions int `json:"sessions" example:"3"`
}
