package promo

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"game-store/internal/domain/promo"
	"game-store/internal/domain/session"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// PromoApplicationService プロモコードアプリケーションサービス
type PromoApplicationService struct {
	registry    *promo.Registry
	sessionRepo session.SessionRepository
	logger      *otelinfra.Logger
	metrics     *otelinfra.Metrics
	tracer      trace.Tracer
}

// NewPromoApplicationService 新しいPromoApplicationServiceを作成
func NewPromoApplicationService(
	registry *promo.Registry,
	sessionRepo session.SessionRepository,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *PromoApplicationService {
	return &PromoApplicationService{
		registry:    registry,
		sessionRepo: sessionRepo,
		logger:      logger,
		metrics:     metrics,
		tracer:      otel.Tracer("promo-service"),
	}
}

// ResolveCode プロモコードを照会（大文字小文字・前後の空白は無視）
func (s *PromoApplicationService) ResolveCode(ctx context.Context, req *ResolveCodeRequest) (*PromoView, error) {
	ctx, span := s.tracer.Start(ctx, "PromoApplicationService.ResolveCode")
	defer span.End()

	p, err := s.resolve(ctx, span, req.Code)
	if err != nil {
		return nil, err
	}
	view := toView(p)
	return &view, nil
}

// ApplyCode プロモコードをセッションに適用。既に適用中のコードは置き換える
func (s *PromoApplicationService) ApplyCode(ctx context.Context, req *ApplyCodeRequest) (*ApplyCodeResponse, error) {
	ctx, span := s.tracer.Start(ctx, "PromoApplicationService.ApplyCode")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", req.SessionID))

	sess, err := s.sessionRepo.FindByID(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	p, err := s.resolve(ctx, span, req.Code)
	if err != nil {
		return nil, err
	}

	resp := &ApplyCodeResponse{Promo: toView(p)}
	if prev := sess.ActivePromo(); prev != nil {
		resp.Replaced = prev.Code()
	}
	sess.ApplyPromo(p)

	s.logger.Info(ctx, "Promo code applied", map[string]interface{}{
		"session_id": req.SessionID,
		"code":       p.Code(),
		"discount":   p.DiscountPercent(),
		"replaced":   resp.Replaced,
	})

	return resp, nil
}

// ClearCode セッションのプロモコード適用を解除
func (s *PromoApplicationService) ClearCode(ctx context.Context, req *ClearCodeRequest) error {
	ctx, span := s.tracer.Start(ctx, "PromoApplicationService.ClearCode")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", req.SessionID))

	sess, err := s.sessionRepo.FindByID(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to find session: %w", err)
	}
	sess.ClearPromo()
	return nil
}

// ListCodes 登録済みのプロモコード一覧（管理用）
func (s *PromoApplicationService) ListCodes(ctx context.Context) *ListCodesResponse {
	codes := s.registry.Codes()
	views := make([]PromoView, 0, len(codes))
	for _, p := range codes {
		views = append(views, toView(p))
	}
	return &ListCodesResponse{Codes: views}
}

func (s *PromoApplicationService) resolve(ctx context.Context, span trace.Span, code string) (*promo.PromoCode, error) {
	span.SetAttributes(attribute.String("code", promo.Normalize(code)))

	p, err := s.registry.Resolve(code)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.metrics.RecordPromoResolution(ctx, false)
		if errors.Is(err, promo.ErrPromoNotFound) {
			s.logger.Warn(ctx, "Promo code not found", map[string]interface{}{
				"code": promo.Normalize(code),
			})
		}
		return nil, err
	}
	s.metrics.RecordPromoResolution(ctx, true)
	return p, nil
}

func toView(p *promo.PromoCode) PromoView {
	return PromoView{
		Code:            p.Code(),
		DiscountPercent: p.DiscountPercent(),
		Description:     p.Description(),
	}
}
