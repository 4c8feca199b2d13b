package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	promoapp "game-store/internal/application/promo"
	sessionapp "game-store/internal/application/session"
)

// AdminHandler 管理API用ハンドラー
type AdminHandler struct {
	promoService   *promoapp.PromoApplicationService
	sessionService *sessionapp.SessionApplicationService
}

// NewAdminHandler 新しいAdminHandlerを作成
func NewAdminHandler(promoService *promoapp.PromoApplicationService, sessionService *sessionapp.SessionApplicationService) *AdminHandler {
	return &AdminHandler{
		promoService:   promoService,
		sessionService: sessionService,
	}
}

// ListPromoCodes プロモコード一覧ハンドラー（管理API用）
// @Summary プロモコード一覧（管理API）
// @Tags admin
// @Produce json
// @Param X-API-Key header string true "APIキー"
// @Success 200 {object} PromoCodesResponse
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /admin/promo-codes [get]
func (h *AdminHandler) ListPromoCodes(c echo.Context) error {
	resp := h.promoService.ListCodes(c.Request().Context())
	codes := make([]PromoResponse, 0, len(resp.Codes))
	for _, p := range resp.Codes {
		codes = append(codes, toPromoResponse(p))
	}
	return c.JSON(http.StatusOK, PromoCodesResponse{Codes: codes})
}

// CountSessions セッション数ハンドラー（管理API用）
// @Summary 有効なセッション数（管理API）
// @Tags admin
// @Produce json
// @Param X-API-Key header string true "APIキー"
// @Success 200 {object} SessionCountResponse
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /admin/sessions/count [get]
func (h *AdminHandler) CountSessions(c echo.Context) error {
	count, err := h.sessionService.CountSessions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SessionCountResponse{Sessions: count})
}
