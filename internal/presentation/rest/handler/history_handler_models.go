package handler

import "time"

// TransactionResponse トランザクションレスポンス
// @Description 入金・購入の記録
type TransactionResponse struct {
	TransactionID   string    `json:"transaction_id"`
	TransactionType string    `json:"transaction_type" example:"purchase"`
	Amount          int64     `json:"amount" example:"875"`
	Bonus           int64     `json:"bonus" example:"0"`
	BalanceBefore   int64     `json:"balance_before" example:"5000"`
	BalanceAfter    int64     `json:"balance_after" example:"4125"`
	ItemID          *int64    `json:"item_id,omitempty" example:"1"`
	PromoCode       *string   `json:"promo_code,omitempty" example:"GAME50"`
	Status          string    `json:"status" example:"completed"`
	FailureReason   string    `json:"failure_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// TransactionHistoryResponse トランザクション履歴レスポンス
// @Description トランザクション履歴（新しい順）
type TransactionHistoryResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total" example:"2"`
	Limit        int                   `json:"limit" example:"50"`
	Offset       int                   `json:"offset" example:"0"`
}

// LibraryItemResponse 購入済みアイテム
// @Description 購入済みアイテム
type LibraryItemResponse struct {
	ItemID      int64     `json:"item_id" example:"1"`
	Title       string    `json:"title" example:"Cyber Nexus 2077"`
	PricePaid   int64     `json:"price_paid" example:"875"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// LibraryResponse ライブラリレスポンス
// @Description 購入済みアイテム一覧（購入順）
type LibraryResponse struct {
	Items      []LibraryItemResponse `json:"items"`
	TotalSpent int64                 `json:"total_spent" example:"875"`
}
