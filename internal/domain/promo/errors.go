package promo

import "errors"

var (
	// ErrPromoNotFound プロモコードが見つからないエラー（割引0%とは区別する）
	ErrPromoNotFound = errors.New("promo code not found")
	// ErrInvalidCode 無効なコードエラー
	ErrInvalidCode = errors.New("invalid promo code")
	// ErrInvalidDiscount 無効な割引率エラー
	ErrInvalidDiscount = errors.New("invalid discount percent")
	// ErrDuplicateCode コードが重複しているエラー
	ErrDuplicateCode = errors.New("duplicate promo code")
)
