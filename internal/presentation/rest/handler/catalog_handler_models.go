package handler

// ItemResponse アイテムレスポンス
// @Description カタログのアイテム
type ItemResponse struct {
	ID              int64  `json:"id" example:"1"`
	Title           string `json:"title" example:"Cyber Nexus 2077"`
	Genre           string `json:"genre" example:"RPG"`
	Description     string `json:"description"`
	Rating          string `json:"rating" example:"9.5"`
	BasePrice       int64  `json:"base_price" example:"2499"`
	DiscountPercent int    `json:"discount_percent" example:"30"`
	PriceBucket     string `json:"price_bucket" example:"high"`
	EffectivePrice  int64  `json:"effective_price" example:"1750"`
	IsFree          bool   `json:"is_free"`
	Owned           bool   `json:"owned"`
}

// CatalogResponse カタログ検索レスポンス
// @Description カタログ検索レスポンス
type CatalogResponse struct {
	Items       []ItemResponse `json:"items"`
	Total       int            `json:"total" example:"6"`
	ActivePromo string         `json:"active_promo,omitempty" example:"GAME50"`
}

// GenresResponse ジャンル・価格帯一覧レスポンス
// @Description 絞り込みに使えるジャンルと価格帯
type GenresResponse struct {
	Genres       []string `json:"genres"`
	PriceBuckets []string `json:"price_buckets"`
}
