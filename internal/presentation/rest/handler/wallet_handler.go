package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	walletapp "game-store/internal/application/wallet"
)

// WalletHandler ウォレット関連ハンドラー
type WalletHandler struct {
	walletService *walletapp.WalletApplicationService
}

// NewWalletHandler 新しいWalletHandlerを作成
func NewWalletHandler(walletService *walletapp.WalletApplicationService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance 残高取得ハンドラー
// @Summary 残高を取得
// @Tags wallet
// @Produce json
// @Security Bearer
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /wallet [get]
func (h *WalletHandler) GetBalance(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	resp, err := h.walletService.GetBalance(c.Request().Context(), &walletapp.GetBalanceRequest{
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, BalanceResponse{
		SessionID: resp.SessionID,
		Balance:   resp.Balance,
	})
}

// TopUp 入金ハンドラー
// @Summary ウォレットに入金
// @Tags wallet
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body TopUpRequest true "入金リクエスト"
// @Success 200 {object} TopUpResponse
// @Failure 400 {object} ErrorResponse "不正な金額"
// @Router /wallet/topup [post]
func (h *WalletHandler) TopUp(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	var reqBody TopUpRequest
	if err := bindAndValidate(c, &reqBody); err != nil {
		return err
	}

	resp, err := h.walletService.TopUp(c.Request().Context(), &walletapp.TopUpRequest{
		SessionID: sessionID,
		Amount:    reqBody.Amount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TopUpResponse{
		TransactionID: resp.TransactionID,
		Deposited:     resp.Deposited,
		BonusPercent:  resp.BonusPercent,
		Bonus:         resp.Bonus,
		Credited:      resp.Credited,
		BalanceBefore: resp.BalanceBefore,
		BalanceAfter:  resp.BalanceAfter,
	})
}

// ListPresets 入金プリセット一覧ハンドラー
// @Summary 入金プリセット一覧
// @Tags wallet
// @Produce json
// @Success 200 {object} PresetsResponse
// @Router /wallet/presets [get]
func (h *WalletHandler) ListPresets(c echo.Context) error {
	resp := h.walletService.ListPresets(c.Request().Context())
	presets := make([]PresetResponse, 0, len(resp.Presets))
	for _, p := range resp.Presets {
		presets = append(presets, PresetResponse{
			Amount:       p.Amount,
			BonusPercent: p.BonusPercent,
			Credited:     p.Credited,
		})
	}
	return c.JSON(http.StatusOK, PresetsResponse{Presets: presets})
}
