package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	promoapp "game-store/internal/application/promo"
	"game-store/internal/domain/catalog"
	"game-store/internal/domain/promo"
	"game-store/internal/domain/session"
	"game-store/internal/domain/wallet"
)

func assertHTTPError(t *testing.T, err error, wantStatus int) {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "want *echo.HTTPError, got %v", err)
	assert.Equal(t, wantStatus, he.Code)
}

func TestSessionHandler(t *testing.T) {
	f := newFixture(t)
	h := NewSessionHandler(f.session)

	c, rec := f.newContext(http.MethodPost, "/api/v1/sessions", "", "")
	require.NoError(t, h.StartSession(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	started := decodeBody[StartSessionResponse](t, rec)
	assert.NotEmpty(t, started.SessionID)
	assert.NotEmpty(t, started.Token)
	assert.Equal(t, "Bearer", started.TokenType)
	assert.Equal(t, int64(3600), started.ExpiresIn)
	assert.Equal(t, int64(5000), started.Balance)

	c, rec = f.newContext(http.MethodGet, "/api/v1/session", "", started.SessionID)
	require.NoError(t, h.GetSession(c))
	got := decodeBody[SessionResponse](t, rec)
	assert.Equal(t, started.SessionID, got.SessionID)
	assert.Equal(t, 0, got.LibraryCount)

	c, rec = f.newContext(http.MethodDelete, "/api/v1/session", "", started.SessionID)
	require.NoError(t, h.EndSession(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, _ = f.newContext(http.MethodGet, "/api/v1/session", "", started.SessionID)
	assert.ErrorIs(t, h.GetSession(c), session.ErrSessionNotFound)

	c, _ = f.newContext(http.MethodGet, "/api/v1/session", "", "")
	assertHTTPError(t, h.GetSession(c), http.StatusUnauthorized)
}

func TestCatalogHandler_ListItems(t *testing.T) {
	f := newFixture(t)
	h := NewCatalogHandler(f.catalog)
	sessionID := f.startSession()

	tests := []struct {
		name      string
		target    string
		wantTotal int
		wantErr   error
	}{
		{name: "正常系: 絞り込みなし", target: "/api/v1/catalog", wantTotal: 6},
		{name: "正常系: ジャンル", target: "/api/v1/catalog?genre=RPG", wantTotal: 1},
		{name: "正常系: 無料", target: "/api/v1/catalog?price=free", wantTotal: 1},
		{name: "正常系: 検索語は大文字小文字を区別しない", target: "/api/v1/catalog?search=NEXUS", wantTotal: 1},
		{name: "正常系: 一致なし", target: "/api/v1/catalog?search=zzzz", wantTotal: 0},
		{name: "異常系: 不明なジャンル", target: "/api/v1/catalog?genre=Puzzle", wantErr: catalog.ErrInvalidGenre},
		{name: "異常系: 不明な価格帯", target: "/api/v1/catalog?price=cheap", wantErr: catalog.ErrInvalidPriceBucket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := f.newContext(http.MethodGet, tt.target, "", sessionID)
			err := h.ListItems(c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			resp := decodeBody[CatalogResponse](t, rec)
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.Len(t, resp.Items, tt.wantTotal)
		})
	}
}

func TestCatalogHandler_GetItem(t *testing.T) {
	f := newFixture(t)
	h := NewCatalogHandler(f.catalog)
	sessionID := f.startSession()

	tests := []struct {
		name       string
		itemID     string
		wantPrice  int64
		wantStatus int
		wantErr    error
	}{
		{name: "正常系: 割引あり", itemID: "1", wantPrice: 1750},
		{name: "正常系: 無料アイテム", itemID: "6", wantPrice: 0},
		{name: "異常系: 存在しない", itemID: "99", wantErr: catalog.ErrItemNotFound},
		{name: "異常系: 数値でない", itemID: "abc", wantStatus: http.StatusBadRequest},
		{name: "異常系: 0", itemID: "0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := f.newContext(http.MethodGet, "/api/v1/catalog/"+tt.itemID, "", sessionID, "item_id", tt.itemID)
			err := h.GetItem(c)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantStatus != 0:
				assertHTTPError(t, err, tt.wantStatus)
			default:
				require.NoError(t, err)
				item := decodeBody[ItemResponse](t, rec)
				assert.Equal(t, tt.wantPrice, item.EffectivePrice)
				assert.Equal(t, tt.wantPrice == 0, item.IsFree)
			}
		})
	}
}

func TestCatalogHandler_ListGenres(t *testing.T) {
	f := newFixture(t)
	h := NewCatalogHandler(f.catalog)

	c, rec := f.newContext(http.MethodGet, "/api/v1/genres", "", "")
	require.NoError(t, h.ListGenres(c))
	resp := decodeBody[GenresResponse](t, rec)
	assert.Equal(t, "all", resp.Genres[0])
	assert.Equal(t, []string{"all", "free", "low", "mid", "high"}, resp.PriceBuckets)
}

func TestWalletHandler_TopUp(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantCredited int64
		wantStatus   int
		wantErr      error
	}{
		{name: "正常系: ボーナスなし", body: `{"amount":500}`, wantCredited: 500},
		{name: "正常系: 5%ボーナス", body: `{"amount":1500}`, wantCredited: 1575},
		{name: "異常系: 0", body: `{"amount":0}`, wantErr: errValidation},
		{name: "異常系: 負の値", body: `{"amount":-10}`, wantErr: errValidation},
		{name: "異常系: JSONでない", body: `amount=10`, wantStatus: http.StatusBadRequest},
		{name: "異常系: 上限超過", body: `{"amount":9223372036854775807}`, wantErr: wallet.ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			h := NewWalletHandler(f.wallet)
			sessionID := f.startSession()

			c, rec := f.newContext(http.MethodPost, "/api/v1/wallet/topup", tt.body, sessionID)
			err := h.TopUp(c)
			switch {
			case tt.wantErr == errValidation:
				assert.Error(t, err)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantStatus != 0:
				assertHTTPError(t, err, tt.wantStatus)
			default:
				require.NoError(t, err)
				resp := decodeBody[TopUpResponse](t, rec)
				assert.Equal(t, tt.wantCredited, resp.Credited)
				assert.Equal(t, int64(5000), resp.BalanceBefore)
				assert.Equal(t, 5000+tt.wantCredited, resp.BalanceAfter)

				c, rec = f.newContext(http.MethodGet, "/api/v1/wallet", "", sessionID)
				require.NoError(t, h.GetBalance(c))
				assert.Equal(t, 5000+tt.wantCredited, decodeBody[BalanceResponse](t, rec).Balance)
			}
		})
	}
}

// errValidation バリデーターが返すエラー（型は問わない）
var errValidation = errors.New("validation")

func TestWalletHandler_ListPresets(t *testing.T) {
	f := newFixture(t)
	h := NewWalletHandler(f.wallet)

	c, rec := f.newContext(http.MethodGet, "/api/v1/wallet/presets", "", "")
	require.NoError(t, h.ListPresets(c))
	resp := decodeBody[PresetsResponse](t, rec)
	require.NotEmpty(t, resp.Presets)
	require.Len(t, resp.Presets, len(wallet.TopUpPresets))
	for _, p := range resp.Presets {
		assert.Equal(t, wallet.BonusPercentFor(p.Amount), p.BonusPercent, "amount %d", p.Amount)
		assert.Equal(t, wallet.CreditFor(p.Amount), p.Credited, "amount %d", p.Amount)
	}
	assert.Equal(t, 0, resp.Presets[0].BonusPercent)
}

func TestPromoHandler(t *testing.T) {
	f := newFixture(t)
	h := NewPromoHandler(f.promo, f.session)
	sessionID := f.startSession()

	// 適用前は204
	c, rec := f.newContext(http.MethodGet, "/api/v1/promo", "", sessionID)
	require.NoError(t, h.GetActive(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = f.newContext(http.MethodGet, "/api/v1/promo-codes/game50", "", "", "code", "game50")
	require.NoError(t, h.ResolveCode(c))
	assert.Equal(t, 50, decodeBody[PromoResponse](t, rec).DiscountPercent)

	c, _ = f.newContext(http.MethodGet, "/api/v1/promo-codes/NOPE", "", "", "code", "NOPE")
	assert.ErrorIs(t, h.ResolveCode(c), promo.ErrPromoNotFound)

	c, rec = f.newContext(http.MethodPut, "/api/v1/promo", `{"code":" vip20 "}`, sessionID)
	require.NoError(t, h.ApplyCode(c))
	applied := decodeBody[ApplyPromoResponse](t, rec)
	assert.Equal(t, "VIP20", applied.Promo.Code)
	assert.Empty(t, applied.Replaced)

	c, rec = f.newContext(http.MethodPut, "/api/v1/promo", `{"code":"GAME50"}`, sessionID)
	require.NoError(t, h.ApplyCode(c))
	assert.Equal(t, "VIP20", decodeBody[ApplyPromoResponse](t, rec).Replaced)

	c, rec = f.newContext(http.MethodGet, "/api/v1/promo", "", sessionID)
	require.NoError(t, h.GetActive(c))
	assert.Equal(t, "GAME50", decodeBody[PromoResponse](t, rec).Code)

	c, _ = f.newContext(http.MethodPut, "/api/v1/promo", `{"code":"BOGUS"}`, sessionID)
	assert.ErrorIs(t, h.ApplyCode(c), promo.ErrPromoNotFound)

	c, rec = f.newContext(http.MethodDelete, "/api/v1/promo", "", sessionID)
	require.NoError(t, h.ClearCode(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = f.newContext(http.MethodGet, "/api/v1/promo", "", sessionID)
	require.NoError(t, h.GetActive(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPurchaseHandler(t *testing.T) {
	f := newFixture(t)
	h := NewPurchaseHandler(f.purchase)
	sessionID := f.startSession()

	_, err := f.promo.ApplyCode(context.Background(), &promoapp.ApplyCodeRequest{SessionID: sessionID, Code: "GAME50"})
	require.NoError(t, err)

	c, rec := f.newContext(http.MethodGet, "/api/v1/catalog/1/quote", "", sessionID, "item_id", "1")
	require.NoError(t, h.Quote(c))
	quote := decodeBody[QuoteResponse](t, rec)
	assert.Equal(t, int64(2499), quote.BasePrice)
	assert.Equal(t, int64(1750), quote.AfterItemDiscount)
	assert.Equal(t, int64(875), quote.FinalPrice)
	assert.Equal(t, int64(1624), quote.Savings)
	assert.True(t, quote.Affordable)
	assert.False(t, quote.Owned)

	c, rec = f.newContext(http.MethodPost, "/api/v1/purchases", `{"item_id":1}`, sessionID)
	require.NoError(t, h.Purchase(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	bought := decodeBody[PurchaseResponse](t, rec)
	assert.Equal(t, int64(875), bought.PricePaid)
	assert.Equal(t, "GAME50", bought.PromoCode)
	assert.Equal(t, int64(4125), bought.BalanceAfter)
	assert.WithinDuration(t, time.Now(), bought.PurchasedAt, time.Minute)

	c, _ = f.newContext(http.MethodPost, "/api/v1/purchases", `{"item_id":1}`, sessionID)
	assert.ErrorIs(t, h.Purchase(c), session.ErrAlreadyOwned)

	c, _ = f.newContext(http.MethodPost, "/api/v1/purchases", `{"item_id":99}`, sessionID)
	assert.ErrorIs(t, h.Purchase(c), catalog.ErrItemNotFound)

	c, _ = f.newContext(http.MethodPost, "/api/v1/purchases", `{}`, sessionID)
	assert.Error(t, h.Purchase(c))
}

func TestHistoryHandler(t *testing.T) {
	f := newFixture(t)
	purchases := NewPurchaseHandler(f.purchase)
	wallets := NewWalletHandler(f.wallet)
	h := NewHistoryHandler(f.history)
	sessionID := f.startSession()

	c, _ := f.newContext(http.MethodPost, "/api/v1/wallet/topup", `{"amount":1000}`, sessionID)
	require.NoError(t, wallets.TopUp(c))
	c, _ = f.newContext(http.MethodPost, "/api/v1/purchases", `{"item_id":3}`, sessionID)
	require.NoError(t, purchases.Purchase(c))

	tests := []struct {
		name      string
		target    string
		wantTotal int
		wantLen   int
		wantType  string
		wantCode  int
	}{
		{name: "正常系: 全件", target: "/api/v1/transactions", wantTotal: 2, wantLen: 2, wantType: "purchase"},
		{name: "正常系: 種別で絞り込み", target: "/api/v1/transactions?type=topup", wantTotal: 1, wantLen: 1, wantType: "topup"},
		{name: "正常系: limit", target: "/api/v1/transactions?limit=1", wantTotal: 2, wantLen: 1, wantType: "purchase"},
		{name: "正常系: offset", target: "/api/v1/transactions?offset=1", wantTotal: 2, wantLen: 1, wantType: "topup"},
		{name: "異常系: limitが数値でない", target: "/api/v1/transactions?limit=ten", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := f.newContext(http.MethodGet, tt.target, "", sessionID)
			err := h.GetTransactionHistory(c)
			if tt.wantCode != 0 {
				assertHTTPError(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			resp := decodeBody[TransactionHistoryResponse](t, rec)
			assert.Equal(t, tt.wantTotal, resp.Total)
			require.Len(t, resp.Transactions, tt.wantLen)
			assert.Equal(t, tt.wantType, resp.Transactions[0].TransactionType)
		})
	}

	c, rec := f.newContext(http.MethodGet, "/api/v1/library", "", sessionID)
	require.NoError(t, h.GetLibrary(c))
	library := decodeBody[LibraryResponse](t, rec)
	require.Len(t, library.Items, 1)
	assert.Equal(t, int64(3), library.Items[0].ItemID)
	assert.Equal(t, int64(750), library.TotalSpent)
}

func TestSupportHandler(t *testing.T) {
	f := newFixture(t)
	h := NewSupportHandler(f.support)
	sessionID := f.startSession()

	c, rec := f.newContext(http.MethodPost, "/api/v1/support/messages", `{"text":"   "}`, sessionID)
	require.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody[SendMessageResponse](t, rec).Message)

	c, rec = f.newContext(http.MethodPost, "/api/v1/support/messages", `{"text":"where is my refund?"}`, sessionID)
	require.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	sent := decodeBody[SendMessageResponse](t, rec)
	require.NotNil(t, sent.Message)
	assert.Equal(t, "user", sent.Message.Sender)
	assert.True(t, sent.ReplyExpected)

	assert.Eventually(t, func() bool {
		c, rec := f.newContext(http.MethodGet, "/api/v1/support/messages", "", sessionID)
		if err := h.GetTranscript(c); err != nil {
			return false
		}
		msgs := decodeBody[TranscriptResponse](t, rec).Messages
		return len(msgs) == 2 && msgs[1].Sender == "support"
	}, time.Second, 5*time.Millisecond)
}

func TestAdminHandler(t *testing.T) {
	f := newFixture(t)
	h := NewAdminHandler(f.promo, f.session)
	f.startSession()
	f.startSession()

	c, rec := f.newContext(http.MethodGet, "/api/v1/admin/promo-codes", "", "")
	require.NoError(t, h.ListPromoCodes(c))
	assert.Len(t, decodeBody[PromoCodesResponse](t, rec).Codes, 3)

	c, rec = f.newContext(http.MethodGet, "/api/v1/admin/sessions/count", "", "")
	require.NoError(t, h.CountSessions(c))
	assert.Equal(t, 2, decodeBody[SessionCountResponse](t, rec).Sessions)
}
