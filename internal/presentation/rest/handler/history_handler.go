package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	historyapp "game-store/internal/application/history"
)

// HistoryHandler 履歴関連ハンドラー
type HistoryHandler struct {
	historyService *historyapp.HistoryApplicationService
}

// NewHistoryHandler 新しいHistoryHandlerを作成
func NewHistoryHandler(historyService *historyapp.HistoryApplicationService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// GetTransactionHistory トランザクション履歴取得ハンドラー
// @Summary トランザクション履歴を取得
// @Tags history
// @Produce json
// @Security Bearer
// @Param limit query int false "取得件数（最大100）" default(50)
// @Param offset query int false "オフセット" default(0)
// @Param type query string false "種別" Enums(topup,purchase)
// @Success 200 {object} TransactionHistoryResponse
// @Failure 400 {object} ErrorResponse "不正なクエリ"
// @Router /transactions [get]
func (h *HistoryHandler) GetTransactionHistory(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	limit, err := queryInt(c, "limit", 50)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	resp, err := h.historyService.GetTransactionHistory(c.Request().Context(), &historyapp.GetTransactionHistoryRequest{
		SessionID:       sessionID,
		Limit:           limit,
		Offset:          offset,
		TransactionType: c.QueryParam("type"),
	})
	if err != nil {
		return err
	}

	transactions := make([]TransactionResponse, 0, len(resp.Transactions))
	for _, txn := range resp.Transactions {
		transactions = append(transactions, TransactionResponse{
			TransactionID:   txn.TransactionID(),
			TransactionType: txn.TransactionType().String(),
			Amount:          txn.Amount(),
			Bonus:           txn.Bonus(),
			BalanceBefore:   txn.BalanceBefore(),
			BalanceAfter:    txn.BalanceAfter(),
			ItemID:          txn.ItemID(),
			PromoCode:       txn.PromoCode(),
			Status:          txn.Status().String(),
			FailureReason:   txn.FailureReason(),
			CreatedAt:       txn.CreatedAt(),
		})
	}

	return c.JSON(http.StatusOK, TransactionHistoryResponse{
		Transactions: transactions,
		Total:        resp.Total,
		Limit:        resp.Limit,
		Offset:       resp.Offset,
	})
}

// GetLibrary ライブラリ取得ハンドラー
// @Summary 購入済みアイテムを取得
// @Tags history
// @Produce json
// @Security Bearer
// @Success 200 {object} LibraryResponse
// @Router /library [get]
func (h *HistoryHandler) GetLibrary(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	resp, err := h.historyService.GetLibrary(c.Request().Context(), &historyapp.GetLibraryRequest{
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}

	items := make([]LibraryItemResponse, 0, len(resp.Items))
	for _, e := range resp.Items {
		items = append(items, LibraryItemResponse{
			ItemID:      e.ItemID,
			Title:       e.Title,
			PricePaid:   e.PricePaid,
			PurchasedAt: e.PurchasedAt,
		})
	}
	return c.JSON(http.StatusOK, LibraryResponse{
		Items:      items,
		TotalSpent: resp.TotalSpent,
	})
}

// queryInt 整数のクエリパラメータを取得（未指定時はdef）
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" parameter")
	}
	return v, nil
}
