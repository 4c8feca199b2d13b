package catalog

import (
	"fmt"
)

// Catalog 読み込み後は読み取り専用のアイテム一覧。複数ゴルーチンから同時に参照してよい
type Catalog struct {
	items []*Item
	byID  map[int64]*Item
}

// NewCatalog 新しいCatalogを作成（読み込み順を保持）
func NewCatalog(items []*Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]*Item, 0, len(items)),
		byID:  make(map[int64]*Item, len(items)),
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		if _, exists := c.byID[item.ID()]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateItemID, item.ID())
		}
		c.items = append(c.items, item)
		c.byID[item.ID()] = item
	}
	return c, nil
}

// Items 全アイテムを読み込み順で返す
func (c *Catalog) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len アイテム数を返す
func (c *Catalog) Len() int {
	return len(c.items)
}

// FindByID アイテムIDでアイテムを取得
func (c *Catalog) FindByID(id int64) (*Item, error) {
	item, ok := c.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Search クエリに一致するアイテムを読み込み順で返す
func (c *Catalog) Search(query FilterQuery) []*Item {
	return Filter(c.items, query)
}
