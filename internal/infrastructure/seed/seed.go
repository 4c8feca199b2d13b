// Package seed loads the storefront catalog and promo codes from YAML.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"game-store/internal/domain/catalog"
	"game-store/internal/domain/promo"
)

//go:embed default.yaml
var defaultSeed []byte

// File YAMLファイルの構造
type File struct {
	Version    string     `yaml:"version"`
	Items      []ItemDoc  `yaml:"items"`
	PromoCodes []PromoDoc `yaml:"promo_codes"`
}

// ItemDoc カタログアイテム定義
type ItemDoc struct {
	ID          int64  `yaml:"id"`
	Title       string `yaml:"title"`
	Genre       string `yaml:"genre"`
	Price       int64  `yaml:"price"`
	Rating      string `yaml:"rating"`
	Discount    int    `yaml:"discount"`
	Description string `yaml:"description"`
}

// PromoDoc プロモコード定義
type PromoDoc struct {
	Code        string `yaml:"code"`
	Discount    int    `yaml:"discount"`
	Description string `yaml:"description"`
}

// Seed 読み込み済みのカタログとプロモコード
type Seed struct {
	Catalog *catalog.Catalog
	Promos  *promo.Registry
}

// Load pathのYAMLを読み込む。pathが空の場合は組み込みのデフォルトを使用
func Load(path string) (*Seed, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(b)
}

// Default 組み込みのカタログを返す
func Default() (*Seed, error) {
	return Parse(defaultSeed)
}

// Parse YAMLをパースしてドメインオブジェクトを構築
func Parse(b []byte) (*Seed, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return f.build()
}

func (f File) build() (*Seed, error) {
	items := make([]*catalog.Item, 0, len(f.Items))
	for i, doc := range f.Items {
		genre, err := catalog.NewGenre(doc.Genre)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		rating := decimal.Zero
		if doc.Rating != "" {
			rating, err = decimal.NewFromString(doc.Rating)
			if err != nil {
				return nil, fmt.Errorf("items[%d]: %w: %v", i, catalog.ErrInvalidRating, err)
			}
		}
		item, err := catalog.NewItem(doc.ID, doc.Title, genre, doc.Price, rating, doc.Discount, doc.Description)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	c, err := catalog.NewCatalog(items)
	if err != nil {
		return nil, err
	}

	codes := make([]*promo.PromoCode, 0, len(f.PromoCodes))
	for i, doc := range f.PromoCodes {
		p, err := promo.NewPromoCode(doc.Code, doc.Discount, doc.Description)
		if err != nil {
			return nil, fmt.Errorf("promo_codes[%d]: %w", i, err)
		}
		codes = append(codes, p)
	}
	r, err := promo.NewRegistry(codes)
	if err != nil {
		return nil, err
	}

	return &Seed{Catalog: c, Promos: r}, nil
}
