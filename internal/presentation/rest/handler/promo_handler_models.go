package handler

// PromoResponse プロモコードレスポンス
// @Description プロモコード
type PromoResponse struct {
	Code            string `json:"code" example:"GAME50"`
	DiscountPercent int    `json:"discount_percent" example:"50"`
	Description     string `json:"description,omitempty"`
}

// ApplyPromoRequest プロモコード適用リクエスト
// @Description プロモコード適用リクエスト（大文字小文字は区別しない）
type ApplyPromoRequest struct {
	Code string `json:"code" validate:"required,max=64" example:"game50"`
}

// ApplyPromoResponse プロモコード適用レスポンス
// @Description プロモコード適用レスポンス
type ApplyPromoResponse struct {
	Promo    PromoResponse `json:"promo"`
	Replaced string        `json:"replaced,omitempty" example:"VIP20"`
}

// PromoCodesResponse プロモコード一覧レスポンス
// @Description プロモコード一覧
type PromoCodesResponse struct {
	Codes []PromoResponse `json:"codes"`
}
