package promo

import (
	"fmt"
)

// Registry 起動時に一度だけ構築される読み取り専用のプロモコード表
type Registry struct {
	codes  []*PromoCode
	byCode map[string]*PromoCode
}

// NewRegistry 新しいRegistryを作成（大文字化後に重複するコードはエラー）
func NewRegistry(codes []*PromoCode) (*Registry, error) {
	r := &Registry{
		codes:  make([]*PromoCode, 0, len(codes)),
		byCode: make(map[string]*PromoCode, len(codes)),
	}
	for _, p := range codes {
		if p == nil {
			continue
		}
		if _, exists := r.byCode[p.Code()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, p.Code())
		}
		r.codes = append(r.codes, p)
		r.byCode[p.Code()] = p
	}
	return r, nil
}

// Resolve 入力されたコードを大文字小文字を区別せずに解決
func (r *Registry) Resolve(code string) (*PromoCode, error) {
	p, ok := r.byCode[Normalize(code)]
	if !ok {
		return nil, ErrPromoNotFound
	}
	return p, nil
}

// Codes 全コードを登録順で返す
func (r *Registry) Codes() []*PromoCode {
	out := make([]*PromoCode, len(r.codes))
	copy(out, r.codes)
	return out
}

// Len 登録コード数を返す
func (r *Registry) Len() int {
	return len(r.codes)
}
