package pricing

import (
	"game-store/internal/domain/catalog"
	"game-store/internal/domain/promo"
)

// Quote 価格計算の内訳
type Quote struct {
	ItemID            int64
	BasePrice         int64
	ItemDiscount      int
	PromoCode         string // 適用なしの場合は空文字列
	PromoDiscount     int
	AfterItemDiscount int64
	FinalPrice        int64
}

// Savings 基本価格からの割引額を返す
func (q Quote) Savings() int64 {
	return q.BasePrice - q.FinalPrice
}

// HasPromo プロモコードが適用されているかどうかを返す
func (q Quote) HasPromo() bool {
	return q.PromoCode != ""
}

// ApplyPercent 金額から割引額（切り捨て）を差し引いた値を返す。結果は0未満にならない
func ApplyPercent(amount int64, percent int) int64 {
	if amount <= 0 {
		return 0
	}
	if percent <= 0 {
		return amount
	}
	if percent >= 100 {
		return 0
	}
	discounted := amount - amount*int64(percent)/100
	if discounted < 0 {
		return 0
	}
	return discounted
}

// EffectivePrice 実効価格を返す。activePromoがnilの場合はアイテム割引のみ適用
func EffectivePrice(item *catalog.Item, activePromo *promo.PromoCode) int64 {
	return Calculate(item, activePromo).FinalPrice
}

// Calculate アイテム割引の後にプロモ割引を乗算的に適用した内訳を返す
func Calculate(item *catalog.Item, activePromo *promo.PromoCode) Quote {
	q := Quote{
		ItemID:       item.ID(),
		BasePrice:    item.BasePrice(),
		ItemDiscount: item.DiscountPercent(),
	}

	// 無料アイテムは割引に関係なく0
	if item.IsFree() {
		if activePromo != nil {
			q.PromoCode = activePromo.Code()
			q.PromoDiscount = activePromo.DiscountPercent()
		}
		return q
	}

	q.AfterItemDiscount = ApplyPercent(item.BasePrice(), item.DiscountPercent())
	q.FinalPrice = q.AfterItemDiscount

	if activePromo != nil {
		q.PromoCode = activePromo.Code()
		q.PromoDiscount = activePromo.DiscountPercent()
		q.FinalPrice = ApplyPercent(q.AfterItemDiscount, activePromo.DiscountPercent())
	}

	return q
}
