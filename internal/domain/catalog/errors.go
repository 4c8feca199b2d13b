package catalog

import "errors"

var (
	// ErrItemNotFound アイテムが見つからないエラー
	ErrItemNotFound = errors.New("item not found")
	// ErrDuplicateItemID アイテムIDが重複しているエラー
	ErrDuplicateItemID = errors.New("duplicate item id")
	// ErrInvalidItemID 無効なアイテムIDエラー
	ErrInvalidItemID = errors.New("invalid item id")
	// ErrInvalidTitle 無効なタイトルエラー
	ErrInvalidTitle = errors.New("invalid title")
	// ErrInvalidPrice 無効な価格エラー
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidDiscount 無効な割引率エラー
	ErrInvalidDiscount = errors.New("invalid discount percent")
	// ErrInvalidRating 無効な評価エラー
	ErrInvalidRating = errors.New("invalid rating")
	// ErrInvalidGenre 無効なジャンルエラー
	ErrInvalidGenre = errors.New("invalid genre")
	// ErrInvalidPriceBucket 無効な価格帯エラー
	ErrInvalidPriceBucket = errors.New("invalid price bucket")
)
