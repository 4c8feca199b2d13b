package purchase

import "time"

// QuoteRequest 価格見積もりリクエスト
type QuoteRequest struct {
	SessionID string
	ItemID    int64
}

// QuoteResponse 価格見積もりレスポンス
type QuoteResponse struct {
	ItemID            int64
	BasePrice         int64
	ItemDiscount      int
	AfterItemDiscount int64
	PromoCode         string
	PromoDiscount     int
	FinalPrice        int64
	Savings           int64
	Balance           int64
	Affordable        bool
	Owned             bool
}

// PurchaseRequest 購入リクエスト
type PurchaseRequest struct {
	SessionID string
	ItemID    int64
}

// PurchaseResponse 購入レスポンス
type PurchaseResponse struct {
	TransactionID string
	ItemID        int64
	Title         string
	PricePaid     int64
	PromoCode     string
	BalanceBefore int64
	BalanceAfter  int64
	PurchasedAt   time.Time
}
