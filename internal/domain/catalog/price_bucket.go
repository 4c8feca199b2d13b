package catalog

import (
	"fmt"
)

const (
	// LowPriceCeiling lowバケットの上限（この値を含まない）
	LowPriceCeiling = 1000
	// MidPriceCeiling midバケットの上限（この値を含まない）
	MidPriceCeiling = 2000
)

// PriceBucket 価格帯を表す値オブジェクト
type PriceBucket string

const (
	PriceBucketAll  PriceBucket = "all"  // 絞り込みなし
	PriceBucketFree PriceBucket = "free" // 無料
	PriceBucketLow  PriceBucket = "low"  // 0 < price < 1000
	PriceBucketMid  PriceBucket = "mid"  // 1000 <= price < 2000
	PriceBucketHigh PriceBucket = "high" // price >= 2000
)

// NewPriceBucket 新しいPriceBucketを作成（空文字列は"all"として扱う）
func NewPriceBucket(s string) (PriceBucket, error) {
	switch s {
	case "":
		return PriceBucketAll, nil
	case "all", "free", "low", "mid", "high":
		return PriceBucket(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidPriceBucket, s)
	}
}

// BucketOf 基本価格が属するバケットを返す
func BucketOf(basePrice int64) PriceBucket {
	switch {
	case basePrice <= 0:
		return PriceBucketFree
	case basePrice < LowPriceCeiling:
		return PriceBucketLow
	case basePrice < MidPriceCeiling:
		return PriceBucketMid
	default:
		return PriceBucketHigh
	}
}

// String 文字列表現を返す
func (b PriceBucket) String() string {
	return string(b)
}

// Valid 有効なバケットかどうかを返す
func (b PriceBucket) Valid() bool {
	switch b {
	case PriceBucketAll, PriceBucketFree, PriceBucketLow, PriceBucketMid, PriceBucketHigh:
		return true
	default:
		return false
	}
}

// Contains 基本価格がバケットに含まれるかどうかを返す
func (b PriceBucket) Contains(basePrice int64) bool {
	if b == PriceBucketAll {
		return true
	}
	return BucketOf(basePrice) == b
}

// PriceBuckets 選択可能なバケット一覧を返す
func PriceBuckets() []PriceBucket {
	return []PriceBucket{PriceBucketAll, PriceBucketFree, PriceBucketLow, PriceBucketMid, PriceBucketHigh}
}
