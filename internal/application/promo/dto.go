package promo

// PromoView 表示用プロモコード
type PromoView struct {
	Code            string
	DiscountPercent int
	Description     string
}

// ResolveCodeRequest プロモコード照会リクエスト
type ResolveCodeRequest struct {
	Code string
}

// ApplyCodeRequest プロモコード適用リクエスト
type ApplyCodeRequest struct {
	SessionID string
	Code      string
}

// ApplyCodeResponse プロモコード適用レスポンス
type ApplyCodeResponse struct {
	Promo    PromoView
	Replaced string // 置き換えられたコード（なければ空文字列）
}

// ClearCodeRequest プロモコード解除リクエスト
type ClearCodeRequest struct {
	SessionID string
}

// ListCodesResponse プロモコード一覧レスポンス
type ListCodesResponse struct {
	Codes []PromoView
}
