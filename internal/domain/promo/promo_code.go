package promo

import (
	"strings"
)

// MaxDiscountPercent 最大割引率
const MaxDiscountPercent = 100

// PromoCode プロモコードエンティティ。コードは大文字に正規化して保持する
type PromoCode struct {
	code            string
	discountPercent int
	description     string
}

// NewPromoCode 新しいPromoCodeエンティティを作成
func NewPromoCode(code string, discountPercent int, description string) (*PromoCode, error) {
	normalized := Normalize(code)
	if normalized == "" {
		return nil, ErrInvalidCode
	}
	if discountPercent < 0 || discountPercent > MaxDiscountPercent {
		return nil, ErrInvalidDiscount
	}
	return &PromoCode{
		code:            normalized,
		discountPercent: discountPercent,
		description:     description,
	}, nil
}

// Normalize 照合用にコードを正規化（前後の空白を除去して大文字化）
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Code コードを返す
func (p *PromoCode) Code() string {
	return p.code
}

// DiscountPercent 割引率を返す
func (p *PromoCode) DiscountPercent() int {
	return p.discountPercent
}

// Description 説明を返す
func (p *PromoCode) Description() string {
	return p.description
}

// MustNewPromoCode テスト用ヘルパー: NewPromoCodeを呼び出し、エラーが発生した場合はpanicする
func MustNewPromoCode(code string, discountPercent int, description string) *PromoCode {
	p, err := NewPromoCode(code, discountPercent, description)
	if err != nil {
		panic(err)
	}
	return p
}
