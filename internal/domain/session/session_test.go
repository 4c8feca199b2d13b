package session

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-store/internal/domain/catalog"
	"game-store/internal/domain/promo"
	"game-store/internal/domain/wallet"
)

var (
	cyber = catalog.MustNewItem(1, "Cyber Nexus 2077", catalog.GenreRPG, 2499, decimal.RequireFromString("9.5"), 30, "")
	free  = catalog.MustNewItem(6, "Battle Royale Pro", catalog.GenreShooter, 0, decimal.RequireFromString("8.9"), 0, "")
)

func TestNewSession(t *testing.T) {
	s, err := NewSession("sess-1", 5000)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", s.ID())
	assert.Equal(t, int64(5000), s.Balance())
	assert.Equal(t, 1, s.Transcript().Len())
	assert.Nil(t, s.ActivePromo())
	assert.Empty(t, s.Library())

	_, err = NewSession("bad id!", 5000)
	assert.ErrorIs(t, err, ErrInvalidSessionID)
}

func TestSession_CanAfford(t *testing.T) {
	s := MustNewSession("sess-1", 1750)
	assert.True(t, s.CanAfford(s.Quote(cyber).FinalPrice))
	assert.True(t, s.CanAfford(0))
	assert.False(t, s.CanAfford(1751))
	assert.False(t, s.CanAfford(-1))
}

func TestSession_Checkout(t *testing.T) {
	tests := []struct {
		name        string
		balance     int64
		item        *catalog.Item
		promo       *promo.PromoCode
		owned       bool
		wantPrice   int64
		wantBalance int64
		wantErr     error
	}{
		{name: "正常系: プロモなし", balance: 5000, item: cyber, wantPrice: 1750, wantBalance: 3250},
		{name: "正常系: プロモあり", balance: 5000, item: cyber, promo: promo.MustNewPromoCode("GAME50", 50, ""), wantPrice: 875, wantBalance: 4125},
		{name: "正常系: 無料アイテム", balance: 0, item: free, wantPrice: 0, wantBalance: 0},
		{name: "異常系: 残高不足", balance: 1000, item: cyber, wantBalance: 1000, wantErr: wallet.ErrInsufficientFunds},
		{name: "異常系: 購入済み", balance: 5000, item: cyber, owned: true, wantBalance: 3250, wantErr: ErrAlreadyOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustNewSession("sess-1", tt.balance)
			if tt.owned {
				_, err := s.Checkout(tt.item)
				require.NoError(t, err)
			}
			s.ApplyPromo(tt.promo)

			receipt, err := s.Checkout(tt.item)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantBalance, s.Balance())
				// 失敗時はプロモを消費しない
				assert.Equal(t, tt.promo, s.ActivePromo())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, receipt.Quote.FinalPrice)
			assert.Equal(t, tt.balance, receipt.BalanceBefore)
			assert.Equal(t, tt.wantBalance, receipt.BalanceAfter)
			assert.Equal(t, tt.wantBalance, s.Balance())
			assert.True(t, s.Owns(tt.item.ID()))
			assert.Nil(t, s.ActivePromo())
		})
	}
}

func TestSession_ConcurrentCheckout(t *testing.T) {
	s := MustNewSession("sess-1", 1750)

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Checkout(cyber)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(0), s.Balance())
	assert.Len(t, s.Library(), 1)
}

func TestSession_IsExpired(t *testing.T) {
	s := MustNewSession("sess-1", 0)
	now := s.LastSeenAt()

	assert.False(t, s.IsExpired(now.Add(time.Minute), time.Hour))
	assert.True(t, s.IsExpired(now.Add(time.Hour), time.Hour))
	assert.False(t, s.IsExpired(now.Add(time.Hour), 0))

	s.Touch(now.Add(30 * time.Minute))
	assert.False(t, s.IsExpired(now.Add(time.Hour), time.Hour))
}
