package catalog

import (
	"strings"
)

// FilterQuery 絞り込み条件（リクエストごとに作成）
type FilterQuery struct {
	Genre           Genre
	PriceBucket     PriceBucket
	SearchSubstring string
}

// NewFilterQuery 文字列から絞り込み条件を作成
func NewFilterQuery(genre, priceBucket, search string) (FilterQuery, error) {
	g, err := ParseGenreFilter(genre)
	if err != nil {
		return FilterQuery{}, err
	}
	b, err := NewPriceBucket(priceBucket)
	if err != nil {
		return FilterQuery{}, err
	}
	return FilterQuery{
		Genre:           g,
		PriceBucket:     b,
		SearchSubstring: search,
	}, nil
}

// Matches アイテムがすべての条件に一致するかどうかを返す
func (q FilterQuery) Matches(item *Item) bool {
	return q.matchesGenre(item) && q.matchesPrice(item) && q.matchesText(item)
}

func (q FilterQuery) matchesGenre(item *Item) bool {
	return q.Genre == "" || q.Genre.IsAll() || item.Genre() == q.Genre
}

func (q FilterQuery) matchesPrice(item *Item) bool {
	return q.PriceBucket == "" || q.PriceBucket.Contains(item.BasePrice())
}

func (q FilterQuery) matchesText(item *Item) bool {
	if q.SearchSubstring == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title()), strings.ToLower(q.SearchSubstring))
}

// Filter 条件に一致するアイテムを元の順序のまま返す（入力は変更しない）
func Filter(items []*Item, query FilterQuery) []*Item {
	result := make([]*Item, 0, len(items))
	for _, item := range items {
		if query.Matches(item) {
			result = append(result, item)
		}
	}
	return result
}
