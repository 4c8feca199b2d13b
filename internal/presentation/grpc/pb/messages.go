package pb

// Empty 空のメッセージ
type Empty struct{}

// StartSessionResponse セッション開始レスポンス
type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	Balance   int64  `json:"balance"`
}

// SessionResponse セッション概要
type SessionResponse struct {
	SessionID    string `json:"session_id"`
	Balance      int64  `json:"balance"`
	ActivePromo  string `json:"active_promo,omitempty"`
	LibraryCount int32  `json:"library_count"`
	MessageCount int32  `json:"message_count"`
	CreatedAt    int64  `json:"created_at"` // Unix秒
}

// ListItemsRequest カタログ検索リクエスト
type ListItemsRequest struct {
	Genre       string `json:"genre,omitempty"`
	PriceBucket string `json:"price_bucket,omitempty"`
	Search      string `json:"search,omitempty"`
}

// Item カタログのアイテム
type Item struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Genre           string `json:"genre"`
	Description     string `json:"description,omitempty"`
	Rating          string `json:"rating"`
	BasePrice       int64  `json:"base_price"`
	DiscountPercent int32  `json:"discount_percent"`
	PriceBucket     string `json:"price_bucket"`
	EffectivePrice  int64  `json:"effective_price"`
	Owned           bool   `json:"owned"`
}

// ListItemsResponse カタログ検索レスポンス
type ListItemsResponse struct {
	Items       []*Item `json:"items"`
	ActivePromo string  `json:"active_promo,omitempty"`
}

// ItemRequest アイテム指定リクエスト
type ItemRequest struct {
	ItemID int64 `json:"item_id"`
}

// GenresResponse ジャンル・価格帯一覧
type GenresResponse struct {
	Genres       []string `json:"genres"`
	PriceBuckets []string `json:"price_buckets"`
}

// BalanceResponse 残高レスポンス
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// TopUpRequest 入金リクエスト
type TopUpRequest struct {
	Amount int64 `json:"amount"`
}

// TopUpResponse 入金レスポンス
type TopUpResponse struct {
	TransactionID string `json:"transaction_id"`
	Bonus         int64  `json:"bonus"`
	Credited      int64  `json:"credited"`
	BalanceAfter  int64  `json:"balance_after"`
}

// PromoRequest プロモコード指定リクエスト
type PromoRequest struct {
	Code string `json:"code"`
}

// Promo プロモコード
type Promo struct {
	Code            string `json:"code"`
	DiscountPercent int32  `json:"discount_percent"`
	Description     string `json:"description,omitempty"`
}

// ApplyPromoResponse プロモコード適用レスポンス
type ApplyPromoResponse struct {
	Promo    *Promo `json:"promo"`
	Replaced string `json:"replaced,omitempty"`
}

// QuoteResponse 価格見積もりレスポンス
type QuoteResponse struct {
	ItemID            int64  `json:"item_id"`
	BasePrice         int64  `json:"base_price"`
	AfterItemDiscount int64  `json:"after_item_discount"`
	PromoCode         string `json:"promo_code,omitempty"`
	FinalPrice        int64  `json:"final_price"`
	Affordable        bool   `json:"affordable"`
	Owned             bool   `json:"owned"`
}

// PurchaseResponse 購入レスポンス
type PurchaseResponse struct {
	TransactionID string `json:"transaction_id"`
	ItemID        int64  `json:"item_id"`
	Title         string `json:"title"`
	PricePaid     int64  `json:"price_paid"`
	BalanceAfter  int64  `json:"balance_after"`
}

// HistoryRequest 履歴取得リクエスト
type HistoryRequest struct {
	Limit           int32  `json:"limit,omitempty"`
	Offset          int32  `json:"offset,omitempty"`
	TransactionType string `json:"transaction_type,omitempty"`
}

// Transaction トランザクション
type Transaction struct {
	TransactionID   string `json:"transaction_id"`
	TransactionType string `json:"transaction_type"`
	Amount          int64  `json:"amount"`
	BalanceBefore   int64  `json:"balance_before"`
	BalanceAfter    int64  `json:"balance_after"`
	Status          string `json:"status"`
	CreatedAt       int64  `json:"created_at"` // Unix秒
}

// HistoryResponse 履歴取得レスポンス
type HistoryResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int32          `json:"total"`
}

// LibraryItem 購入済みアイテム
type LibraryItem struct {
	ItemID    int64  `json:"item_id"`
	Title     string `json:"title"`
	PricePaid int64  `json:"price_paid"`
}

// LibraryResponse ライブラリレスポンス
type LibraryResponse struct {
	Items []*LibraryItem `json:"items"`
}

// MessageRequest メッセージ送信リクエスト
type MessageRequest struct {
	Text string `json:"text"`
}

// Message チャットメッセージ
type Message struct {
	Text   string `json:"text"`
	Sender string `json:"sender"`
	SentAt int64  `json:"sent_at"` // Unixミリ秒
}

// SendMessageResponse メッセージ送信レスポンス
type SendMessageResponse struct {
	Message       *Message `json:"message,omitempty"`
	ReplyExpected bool     `json:"reply_expected"`
}

// TranscriptResponse 会話履歴
type TranscriptResponse struct {
	Messages []*Message `json:"messages"`
}

// PromoCodesResponse プロモコード一覧
type PromoCodesResponse struct {
	Codes []*Promo `json:"codes"`
}

// SessionCountResponse セッション数
type SessionCountResponse struct {
	Sessions int32 `json:"sessions"`
}
