package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxPrice 最大価格 (10兆)
	MaxPrice = 10_000_000_000_000
	// MaxDiscountPercent 最大割引率
	MaxDiscountPercent = 100
)

var (
	minRating = decimal.Zero
	maxRating = decimal.NewFromInt(10)
)

// Item 商品（ゲーム）エンティティ。カタログ読み込み後は不変
type Item struct {
	id              int64
	title           string
	genre           Genre
	basePrice       int64 // 整数値（小数点なし）
	rating          decimal.Decimal
	discountPercent int
	description     string
}

// NewItem 新しいItemエンティティを作成
func NewItem(
	id int64,
	title string,
	genre Genre,
	basePrice int64,
	rating decimal.Decimal,
	discountPercent int,
	description string,
) (*Item, error) {
	if id < 1 {
		return nil, ErrInvalidItemID
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidTitle
	}
	if !genre.Valid() {
		return nil, ErrInvalidGenre
	}
	if basePrice < 0 || basePrice > MaxPrice {
		return nil, ErrInvalidPrice
	}
	if rating.LessThan(minRating) || rating.GreaterThan(maxRating) {
		return nil, ErrInvalidRating
	}
	if discountPercent < 0 || discountPercent > MaxDiscountPercent {
		return nil, ErrInvalidDiscount
	}
	return &Item{
		id:              id,
		title:           title,
		genre:           genre,
		basePrice:       basePrice,
		rating:          rating,
		discountPercent: discountPercent,
		description:     description,
	}, nil
}

// ID アイテムIDを返す
func (i *Item) ID() int64 {
	return i.id
}

// Title タイトルを返す
func (i *Item) Title() string {
	return i.title
}

// Genre ジャンルを返す
func (i *Item) Genre() Genre {
	return i.genre
}

// BasePrice 基本価格を返す
func (i *Item) BasePrice() int64 {
	return i.basePrice
}

// Rating 評価を返す
func (i *Item) Rating() decimal.Decimal {
	return i.rating
}

// DiscountPercent アイテム自体の割引率を返す
func (i *Item) DiscountPercent() int {
	return i.discountPercent
}

// Description 説明を返す
func (i *Item) Description() string {
	return i.description
}

// IsFree 無料アイテムかどうかを返す
func (i *Item) IsFree() bool {
	return i.basePrice == 0
}

// PriceBucket 価格帯を返す
func (i *Item) PriceBucket() PriceBucket {
	return BucketOf(i.basePrice)
}

// MustNewItem テスト用ヘルパー: NewItemを呼び出し、エラーが発生した場合はpanicする
func MustNewItem(
	id int64,
	title string,
	genre Genre,
	basePrice int64,
	rating decimal.Decimal,
	discountPercent int,
	description string,
) *Item {
	item, err := NewItem(id, title, genre, basePrice, rating, discountPercent, description)
	if err != nil {
		panic(err)
	}
	return item
}
