package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	purchaseapp "game-store/internal/application/purchase"
)

// PurchaseHandler 購入関連ハンドラー
type PurchaseHandler struct {
	purchaseService *purchaseapp.PurchaseApplicationService
}

// NewPurchaseHandler 新しいPurchaseHandlerを作成
func NewPurchaseHandler(purchaseService *purchaseapp.PurchaseApplicationService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Quote 価格見積もりハンドラー
// @Summary 購入価格を見積もる
// @Tags purchase
// @Produce json
// @Security Bearer
// @Param item_id path int true "アイテムID"
// @Success 200 {object} QuoteResponse
// @Failure 404 {object} ErrorResponse "アイテムが見つからない"
// @Router /catalog/{item_id}/quote [get]
func (h *PurchaseHandler) Quote(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}
	itemID, err := parseItemID(c)
	if err != nil {
		return err
	}

	resp, err := h.purchaseService.Quote(c.Request().Context(), &purchaseapp.QuoteRequest{
		SessionID: sessionID,
		ItemID:    itemID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuoteResponse{
		ItemID:            resp.ItemID,
		BasePrice:         resp.BasePrice,
		ItemDiscount:      resp.ItemDiscount,
		AfterItemDiscount: resp.AfterItemDiscount,
		PromoCode:         resp.PromoCode,
		PromoDiscount:     resp.PromoDiscount,
		FinalPrice:        resp.FinalPrice,
		Savings:           resp.Savings,
		Balance:           resp.Balance,
		Affordable:        resp.Affordable,
		Owned:             resp.Owned,
	})
}

// Purchase 購入ハンドラー
// @Summary アイテムを購入
// @Description 適用中のプロモを反映した価格で残高から引き落とし、ライブラリに追加します
// @Tags purchase
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body PurchaseRequest true "購入リクエスト"
// @Success 201 {object} PurchaseResponse
// @Failure 404 {object} ErrorResponse "アイテムが見つからない"
// @Failure 409 {object} ErrorResponse "残高不足または購入済み"
// @Router /purchases [post]
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	var reqBody PurchaseRequest
	if err := bindAndValidate(c, &reqBody); err != nil {
		return err
	}

	resp, err := h.purchaseService.Purchase(c.Request().Context(), &purchaseapp.PurchaseRequest{
		SessionID: sessionID,
		ItemID:    reqBody.ItemID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, PurchaseResponse{
		TransactionID: resp.TransactionID,
		ItemID:        resp.ItemID,
		Title:         resp.Title,
		PricePaid:     resp.PricePaid,
		PromoCode:     resp.PromoCode,
		BalanceBefore: resp.BalanceBefore,
		BalanceAfter:  resp.BalanceAfter,
		PurchasedAt:   resp.PurchasedAt,
	})
}
