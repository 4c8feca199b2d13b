package catalog

// ListItemsRequest カタログ検索リクエスト
type ListItemsRequest struct {
	Genre       string // 空文字列または"all"で絞り込みなし
	PriceBucket string // all, free, low, mid, high
	Search      string
	SessionID   string // 指定時はプロモ適用後の価格と所持状態を含める
}

// ListItemsResponse カタログ検索レスポンス
type ListItemsResponse struct {
	Items       []ItemView
	Total       int
	ActivePromo string
}

// GetItemRequest アイテム取得リクエスト
type GetItemRequest struct {
	ItemID    int64
	SessionID string
}

// ItemView 表示用アイテム
type ItemView struct {
	ID              int64
	Title           string
	Genre           string
	Description     string
	Rating          string
	BasePrice       int64
	DiscountPercent int
	PriceBucket     string
	EffectivePrice  int64
	IsFree          bool
	Owned           bool
}

// ListGenresResponse ジャンル一覧レスポンス
type ListGenresResponse struct {
	Genres       []string
	PriceBuckets []string
}
