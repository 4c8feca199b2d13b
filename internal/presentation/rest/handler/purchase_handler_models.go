package handler

import "time"

// QuoteResponse 価格見積もりレスポンス
// @Description アイテム割引とプロモ割引を順に適用した価格
type QuoteResponse struct {
	ItemID            int64  `json:"item_id" example:"1"`
	BasePrice         int64  `json:"base_price" example:"2499"`
	ItemDiscount      int    `json:"item_discount_percent" example:"30"`
	AfterItemDiscount int64  `json:"after_item_discount" example:"1750"`
	PromoCode         string `json:"promo_code,omitempty" example:"GAME50"`
	PromoDiscount     int    `json:"promo_discount_percent" example:"50"`
	FinalPrice        int64  `json:"final_price" example:"875"`
	Savings           int64  `json:"savings" example:"1624"`
	Balance           int64  `json:"balance" example:"5000"`
	Affordable        bool   `json:"affordable"`
	Owned             bool   `json:"owned"`
}

// PurchaseRequest 購入リクエスト
// @Description 購入リクエスト
type PurchaseRequest struct {
	ItemID int64 `json:"item_id" validate:"required,gt=0" example:"1"`
}

// PurchaseResponse 購入レスポンス
// @Description 購入レスポンス
type PurchaseResponse struct {
	TransactionID string    `json:"transaction_id"`
	ItemID        int64     `json:"item_id" example:"1"`
	Title         string    `json:"title" example:"Cyber Nexus 2077"`
	PricePaid     int64     `json:"price_paid" example:"875"`
	PromoCode     string    `json:"promo_code,omitempty" example:"GAME50"`
	BalanceBefore int64     `json:"balance_before" example:"5000"`
	BalanceAfter  int64     `json:"balance_after" example:"4125"`
	PurchasedAt   time.Time `json:"purchased_at"`
}
