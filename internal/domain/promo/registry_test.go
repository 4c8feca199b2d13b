package promo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	r, err := NewRegistry([]*PromoCode{
		MustNewPromoCode("GAME50", 50, "first purchase 50% off"),
		MustNewPromoCode("WEEKEND30", 30, "weekend sale"),
		MustNewPromoCode("VIP20", 20, "VIP discount"),
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		code    string
		want    int
		wantErr error
	}{
		{name: "正常系: 完全一致", code: "GAME50", want: 50},
		{name: "正常系: 小文字", code: "game50", want: 50},
		{name: "正常系: 前後の空白", code: "  vip20 ", want: 20},
		{name: "異常系: 未登録", code: "FREE100", wantErr: ErrPromoNotFound},
		{name: "異常系: 空文字", code: "", wantErr: ErrPromoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.DiscountPercent())
		})
	}
}

func TestNewRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry([]*PromoCode{
		MustNewPromoCode("GAME50", 50, ""),
		MustNewPromoCode("game50", 10, ""),
	})
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestNewPromoCode(t *testing.T) {
	_, err := NewPromoCode(" ", 10, "")
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = NewPromoCode("X", 101, "")
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	p, err := NewPromoCode("weekend30", 30, "weekend sale")
	require.NoError(t, err)
	assert.Equal(t, "WEEKEND30", p.Code())
}
