package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	promoapp "game-store/internal/application/promo"
	sessionapp "game-store/internal/application/session"
)

// PromoHandler プロモコード関連ハンドラー
type PromoHandler struct {
	promoService   *promoapp.PromoApplicationService
	sessionService *sessionapp.SessionApplicationService
}

// NewPromoHandler 新しいPromoHandlerを作成
func NewPromoHandler(promoService *promoapp.PromoApplicationService, sessionService *sessionapp.SessionApplicationService) *PromoHandler {
	return &PromoHandler{
		promoService:   promoService,
		sessionService: sessionService,
	}
}

// ResolveCode プロモコード照会ハンドラー
// @Summary プロモコードを照会
// @Tags promo
// @Produce json
// @Param code path string true "プロモコード"
// @Success 200 {object} PromoResponse
// @Failure 404 {object} ErrorResponse "コードが見つからない"
// @Router /promo-codes/{code} [get]
func (h *PromoHandler) ResolveCode(c echo.Context) error {
	resp, err := h.promoService.ResolveCode(c.Request().Context(), &promoapp.ResolveCodeRequest{
		Code: c.Param("code"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPromoResponse(*resp))
}

// GetActive 適用中プロモコード取得ハンドラー
// @Summary 適用中のプロモコードを取得
// @Tags promo
// @Produce json
// @Security Bearer
// @Success 200 {object} PromoResponse
// @Success 204 "適用なし"
// @Router /promo [get]
func (h *PromoHandler) GetActive(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	sess, err := h.sessionService.GetSession(c.Request().Context(), &sessionapp.GetSessionRequest{
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}
	if sess.ActivePromo == "" {
		return c.NoContent(http.StatusNoContent)
	}

	resp, err := h.promoService.ResolveCode(c.Request().Context(), &promoapp.ResolveCodeRequest{
		Code: sess.ActivePromo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPromoResponse(*resp))
}

// ApplyCode プロモコード適用ハンドラー
// @Summary プロモコードを適用
// @Description 適用中のコードがあれば置き換えます。次の購入で消費されます
// @Tags promo
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body ApplyPromoRequest true "プロモコード"
// @Success 200 {object} ApplyPromoResponse
// @Failure 404 {object} ErrorResponse "コードが見つからない"
// @Router /promo [put]
func (h *PromoHandler) ApplyCode(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	var reqBody ApplyPromoRequest
	if err := bindAndValidate(c, &reqBody); err != nil {
		return err
	}

	resp, err := h.promoService.ApplyCode(c.Request().Context(), &promoapp.ApplyCodeRequest{
		SessionID: sessionID,
		Code:      reqBody.Code,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ApplyPromoResponse{
		Promo:    toPromoResponse(resp.Promo),
		Replaced: resp.Replaced,
	})
}

// ClearCode プロモコード解除ハンドラー
// @Summary プロモコードの適用を解除
// @Tags promo
// @Security Bearer
// @Success 204
// @Router /promo [delete]
func (h *PromoHandler) ClearCode(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	if err := h.promoService.ClearCode(c.Request().Context(), &promoapp.ClearCodeRequest{
		SessionID: sessionID,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toPromoResponse(v promoapp.PromoView) PromoResponse {
	return PromoResponse{
		Code:            v.Code,
		DiscountPercent: v.DiscountPercent,
		Description:     v.Description,
	}
}
