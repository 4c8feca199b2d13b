package wallet

// BonusTier 入金額に応じたボーナス段階
type BonusTier struct {
	MinAmount    int64
	BonusPercent int
}

// bonusTiers 入金額の大きい順に並べたボーナス段階
var bonusTiers = []BonusTier{
	{MinAmount: 10000, BonusPercent: 15},
	{MinAmount: 5000, BonusPercent: 10},
	{MinAmount: 1000, BonusPercent: 5},
}

// TopUpPresets ストアで提示する入金額の候補
var TopUpPresets = []int64{500, 1000, 2000, 3000, 5000, 10000}

// BonusTiers ボーナス段階を返す
func BonusTiers() []BonusTier {
	out := make([]BonusTier, len(bonusTiers))
	copy(out, bonusTiers)
	return out
}

// BonusPercentFor 入金額そのものから（入金後の残高ではなく）ボーナス率を決定
func BonusPercentFor(amount int64) int {
	for _, tier := range bonusTiers {
		if amount >= tier.MinAmount {
			return tier.BonusPercent
		}
	}
	return 0
}

// BonusFor 入金額に対するボーナス額（切り捨て）を返す
func BonusFor(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	return amount * int64(BonusPercentFor(amount)) / 100
}

// CreditFor 入金額にボーナスを加えた付与額を返す
func CreditFor(amount int64) int64 {
	return amount + BonusFor(amount)
}
