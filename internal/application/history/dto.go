package history

import (
	"time"

	"game-store/internal/domain/transaction"
)

// GetTransactionHistoryRequest トランザクション履歴取得リクエスト
type GetTransactionHistoryRequest struct {
	SessionID       string
	Limit           int
	Offset          int
	TransactionType string // optional: "topup" or "purchase"
}

// GetTransactionHistoryResponse トランザクション履歴取得レスポンス
type GetTransactionHistoryResponse struct {
	Transactions []*transaction.Transaction
	Total        int // 絞り込み後の総件数
	Limit        int
	Offset       int
}

// GetLibraryRequest ライブラリ取得リクエスト
type GetLibraryRequest struct {
	SessionID string
}

// LibraryEntry 購入済みアイテム
type LibraryEntry struct {
	ItemID      int64
	Title       string
	PricePaid   int64
	PurchasedAt time.Time
}

// GetLibraryResponse ライブラリ取得レスポンス
type GetLibraryResponse struct {
	Items      []LibraryEntry
	TotalSpent int64
}
