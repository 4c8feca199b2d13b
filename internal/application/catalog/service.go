package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"game-store/internal/domain/catalog"
	"game-store/internal/domain/pricing"
	"game-store/internal/domain/promo"
	"game-store/internal/domain/session"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// CatalogApplicationService カタログアプリケーションサービス
type CatalogApplicationService struct {
	catalog     *catalog.Catalog
	sessionRepo session.SessionRepository
	logger      *otelinfra.Logger
	tracer      trace.Tracer
}

// NewCatalogApplicationService 新しいCatalogApplicationServiceを作成
func NewCatalogApplicationService(
	c *catalog.Catalog,
	sessionRepo session.SessionRepository,
	logger *otelinfra.Logger,
) *CatalogApplicationService {
	return &CatalogApplicationService{
		catalog:     c,
		sessionRepo: sessionRepo,
		logger:      logger,
		tracer:      otel.Tracer("catalog-service"),
	}
}

// ListItems 条件に一致するアイテムをカタログ順で返す
func (s *CatalogApplicationService) ListItems(ctx context.Context, req *ListItemsRequest) (*ListItemsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogApplicationService.ListItems")
	defer span.End()

	span.SetAttributes(
		attribute.String("genre", req.Genre),
		attribute.String("price_bucket", req.PriceBucket),
		attribute.String("search", req.Search),
	)

	query, err := catalog.NewFilterQuery(req.Genre, req.PriceBucket, req.Search)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Warn(ctx, "Invalid catalog filter", map[string]interface{}{
			"genre":        req.Genre,
			"price_bucket": req.PriceBucket,
			"error":        err.Error(),
		})
		return nil, err
	}

	sess, err := s.optionalSession(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	matched := s.catalog.Search(query)
	var activePromo *promo.PromoCode
	if sess != nil {
		activePromo = sess.ActivePromo()
	}

	views := make([]ItemView, 0, len(matched))
	for _, item := range matched {
		views = append(views, toItemView(item, sess, activePromo))
	}

	span.SetAttributes(attribute.Int("result_count", len(views)))
	s.logger.Debug(ctx, "Catalog listed", map[string]interface{}{
		"result_count": len(views),
	})

	resp := &ListItemsResponse{
		Items: views,
		Total: len(views),
	}
	if activePromo != nil {
		resp.ActivePromo = activePromo.Code()
	}
	return resp, nil
}

// GetItem アイテムを1件取得
func (s *CatalogApplicationService) GetItem(ctx context.Context, req *GetItemRequest) (*ItemView, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogApplicationService.GetItem")
	defer span.End()

	span.SetAttributes(attribute.Int64("item_id", req.ItemID))

	item, err := s.catalog.FindByID(req.ItemID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Warn(ctx, "Item not found", map[string]interface{}{
			"item_id": req.ItemID,
		})
		return nil, err
	}

	sess, err := s.optionalSession(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	var activePromo *promo.PromoCode
	if sess != nil {
		activePromo = sess.ActivePromo()
	}
	view := toItemView(item, sess, activePromo)
	return &view, nil
}

// ListGenres 選択可能なジャンルと価格帯を返す
func (s *CatalogApplicationService) ListGenres(ctx context.Context) *ListGenresResponse {
	genres := []string{catalog.GenreAll.String()}
	for _, g := range catalog.Genres() {
		genres = append(genres, g.String())
	}
	buckets := make([]string, 0, len(catalog.PriceBuckets()))
	for _, b := range catalog.PriceBuckets() {
		buckets = append(buckets, b.String())
	}
	return &ListGenresResponse{
		Genres:       genres,
		PriceBuckets: buckets,
	}
}

func (s *CatalogApplicationService) optionalSession(ctx context.Context, sessionID string) (*session.Session, error) {
	if sessionID == "" {
		return nil, nil
	}
	sess, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return sess, nil
}

func toItemView(item *catalog.Item, sess *session.Session, activePromo *promo.PromoCode) ItemView {
	view := ItemView{
		ID:              item.ID(),
		Title:           item.Title(),
		Genre:           item.Genre().String(),
		Description:     item.Description(),
		Rating:          item.Rating().StringFixed(1),
		BasePrice:       item.BasePrice(),
		DiscountPercent: item.DiscountPercent(),
		PriceBucket:     item.PriceBucket().String(),
		EffectivePrice:  pricing.EffectivePrice(item, activePromo),
		IsFree:          item.IsFree(),
	}
	if sess != nil {
		view.Owned = sess.Owns(item.ID())
	}
	return view
}
