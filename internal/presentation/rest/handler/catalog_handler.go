package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	catalogapp "game-store/internal/application/catalog"
)

// CatalogHandler カタログ関連ハンドラー
type CatalogHandler struct {
	catalogService *catalogapp.CatalogApplicationService
}

// NewCatalogHandler 新しいCatalogHandlerを作成
func NewCatalogHandler(catalogService *catalogapp.CatalogApplicationService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListItems カタログ検索ハンドラー
// @Summary カタログを検索
// @Description ジャンル、価格帯、タイトルの部分一致（大文字小文字を区別しない）で絞り込みます。価格は適用中のプロモを反映します
// @Tags catalog
// @Produce json
// @Security Bearer
// @Param genre query string false "ジャンル" default(all)
// @Param price query string false "価格帯" Enums(all,free,low,mid,high)
// @Param search query string false "検索語"
// @Success 200 {object} CatalogResponse
// @Failure 400 {object} ErrorResponse "不正な絞り込み条件"
// @Router /catalog [get]
func (h *CatalogHandler) ListItems(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}

	resp, err := h.catalogService.ListItems(c.Request().Context(), &catalogapp.ListItemsRequest{
		Genre:       c.QueryParam("genre"),
		PriceBucket: c.QueryParam("price"),
		Search:      c.QueryParam("search"),
		SessionID:   sessionID,
	})
	if err != nil {
		return err
	}

	items := make([]ItemResponse, 0, len(resp.Items))
	for _, v := range resp.Items {
		items = append(items, toItemResponse(v))
	}
	return c.JSON(http.StatusOK, CatalogResponse{
		Items:       items,
		Total:       resp.Total,
		ActivePromo: resp.ActivePromo,
	})
}

// GetItem アイテム取得ハンドラー
// @Summary アイテムを取得
// @Tags catalog
// @Produce json
// @Security Bearer
// @Param item_id path int true "アイテムID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} ErrorResponse "アイテムが見つからない"
// @Router /catalog/{item_id} [get]
func (h *CatalogHandler) GetItem(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return err
	}
	itemID, err := parseItemID(c)
	if err != nil {
		return err
	}

	resp, err := h.catalogService.GetItem(c.Request().Context(), &catalogapp.GetItemRequest{
		ItemID:    itemID,
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(*resp))
}

// ListGenres ジャンル一覧ハンドラー
// @Summary ジャンルと価格帯の一覧
// @Tags catalog
// @Produce json
// @Success 200 {object} GenresResponse
// @Router /genres [get]
func (h *CatalogHandler) ListGenres(c echo.Context) error {
	resp := h.catalogService.ListGenres(c.Request().Context())
	return c.JSON(http.StatusOK, GenresResponse{
		Genres:       resp.Genres,
		PriceBuckets: resp.PriceBuckets,
	})
}

// parseItemID パスパラメータからアイテムIDを取得
func parseItemID(c echo.Context) (int64, error) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "item_id must be a positive integer")
	}
	return itemID, nil
}

func toItemResponse(v catalogapp.ItemView) ItemResponse {
	return ItemResponse{
		ID:              v.ID,
		Title:           v.Title,
		Genre:           v.Genre,
		Description:     v.Description,
		Rating:          v.Rating,
		BasePrice:       v.BasePrice,
		DiscountPercent: v.DiscountPercent,
		PriceBucket:     v.PriceBucket,
		EffectivePrice:  v.EffectivePrice,
		IsFree:          v.IsFree,
		Owned:           v.Owned,
	}
}
