package purchase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"game-store/internal/domain/catalog"
	"game-store/internal/domain/service"
	"game-store/internal/domain/session"
	"game-store/internal/domain/transaction"
	"game-store/internal/domain/wallet"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// PurchaseApplicationService 購入アプリケーションサービス
type PurchaseApplicationService struct {
	purchaseService *service.PurchaseService
	catalog         *catalog.Catalog
	sessionRepo     session.SessionRepository
	transactionRepo transaction.TransactionRepository
	logger          *otelinfra.Logger
	metrics         *otelinfra.Metrics
	tracer          trace.Tracer
}

// NewPurchaseApplicationService 新しいPurchaseApplicationServiceを作成
func NewPurchaseApplicationService(
	purchaseService *service.PurchaseService,
	c *catalog.Catalog,
	sessionRepo session.SessionRepository,
	transactionRepo transaction.TransactionRepository,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *PurchaseApplicationService {
	return &PurchaseApplicationService{
		purchaseService: purchaseService,
		catalog:         c,
		sessionRepo:     sessionRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
		metrics:         metrics,
		tracer:          otel.Tracer("purchase-service"),
	}
}

// Quote 現在のプロモ適用状態での価格を見積もる（状態は変更しない）
func (s *PurchaseApplicationService) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	ctx, span := s.tracer.Start(ctx, "PurchaseApplicationService.Quote")
	defer span.End()

	span.SetAttributes(
		attribute.String("session_id", req.SessionID),
		attribute.Int64("item_id", req.ItemID),
	)

	q, err := s.purchaseService.Quote(ctx, req.SessionID, req.ItemID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	sess, err := s.sessionRepo.FindByID(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	balance := sess.Balance()

	return &QuoteResponse{
		ItemID:            q.ItemID,
		BasePrice:         q.BasePrice,
		ItemDiscount:      q.ItemDiscount,
		AfterItemDiscount: q.AfterItemDiscount,
		PromoCode:         q.PromoCode,
		PromoDiscount:     q.PromoDiscount,
		FinalPrice:        q.FinalPrice,
		Savings:           q.Savings(),
		Balance:           balance,
		Affordable:        sess.CanAfford(q.FinalPrice),
		Owned:             sess.Owns(q.ItemID),
	}, nil
}

// Purchase アイテムを購入する。残高不足の場合は失敗トランザクションを記録し、残高は変更しない
func (s *PurchaseApplicationService) Purchase(ctx context.Context, req *PurchaseRequest) (*PurchaseResponse, error) {
	ctx, span := s.tracer.Start(ctx, "PurchaseApplicationService.Purchase")
	defer span.End()

	span.SetAttributes(
		attribute.String("session_id", req.SessionID),
		attribute.Int64("item_id", req.ItemID),
	)

	s.logger.Info(ctx, "Purchasing item", map[string]interface{}{
		"session_id": req.SessionID,
		"item_id":    req.ItemID,
	})

	genre := "unknown"
	if item, err := s.catalog.FindByID(req.ItemID); err == nil {
		genre = item.Genre().String()
	}

	receipt, err := s.purchaseService.Purchase(ctx, req.SessionID, req.ItemID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.handleFailure(ctx, req, genre, err)
		return nil, err
	}

	transactionID := uuid.New().String()
	itemID := receipt.Quote.ItemID
	var promoCode *string
	if receipt.Quote.HasPromo() {
		code := receipt.Quote.PromoCode
		promoCode = &code
	}

	txn, err := transaction.NewTransaction(transaction.Params{
		TransactionID:   transactionID,
		SessionID:       req.SessionID,
		TransactionType: transaction.TransactionTypePurchase,
		Amount:          receipt.Quote.FinalPrice,
		BalanceBefore:   receipt.BalanceBefore,
		BalanceAfter:    receipt.BalanceAfter,
		ItemID:          &itemID,
		PromoCode:       promoCode,
		Status:          transaction.TransactionStatusCompleted,
	})
	if err == nil {
		err = s.transactionRepo.Save(ctx, txn)
	}
	if err != nil {
		span.RecordError(err)
		s.logger.Error(ctx, "Failed to record purchase transaction", err, map[string]interface{}{
			"session_id":     req.SessionID,
			"transaction_id": transactionID,
		})
	}

	s.metrics.RecordPurchase(ctx, genre, "completed", receipt.Quote.HasPromo())
	s.metrics.RecordWalletBalance(ctx, "purchase", receipt.BalanceAfter)

	s.logger.Info(ctx, "Item purchased", map[string]interface{}{
		"session_id":     req.SessionID,
		"transaction_id": transactionID,
		"item_id":        itemID,
		"price_paid":     receipt.Quote.FinalPrice,
		"promo_code":     receipt.Quote.PromoCode,
		"balance_after":  receipt.BalanceAfter,
	})

	return &PurchaseResponse{
		TransactionID: transactionID,
		ItemID:        itemID,
		Title:         receipt.Title,
		PricePaid:     receipt.Quote.FinalPrice,
		PromoCode:     receipt.Quote.PromoCode,
		BalanceBefore: receipt.BalanceBefore,
		BalanceAfter:  receipt.BalanceAfter,
		PurchasedAt:   receipt.PurchasedAt,
	}, nil
}

func (s *PurchaseApplicationService) handleFailure(ctx context.Context, req *PurchaseRequest, genre string, err error) {
	fields := map[string]interface{}{
		"session_id": req.SessionID,
		"item_id":    req.ItemID,
		"error":      err.Error(),
	}

	switch {
	case errors.Is(err, wallet.ErrInsufficientFunds):
		s.metrics.RecordPurchase(ctx, genre, "insufficient_funds", false)
		s.recordFailed(ctx, req, err)
		s.logger.Warn(ctx, "Insufficient funds", fields)
	case errors.Is(err, session.ErrAlreadyOwned):
		s.metrics.RecordPurchase(ctx, genre, "already_owned", false)
		s.logger.Warn(ctx, "Item already owned", fields)
	case errors.Is(err, catalog.ErrItemNotFound), errors.Is(err, session.ErrSessionNotFound):
		s.logger.Warn(ctx, "Purchase target not found", fields)
	default:
		s.metrics.RecordError(ctx, "purchase_failed")
		s.logger.Error(ctx, "Failed to purchase", err, map[string]interface{}{
			"session_id": req.SessionID,
			"item_id":    req.ItemID,
		})
	}
}

// recordFailed 残高不足の購入試行を履歴に残す
func (s *PurchaseApplicationService) recordFailed(ctx context.Context, req *PurchaseRequest, cause error) {
	q, err := s.purchaseService.Quote(ctx, req.SessionID, req.ItemID)
	if err != nil {
		return
	}
	sess, err := s.sessionRepo.FindByID(ctx, req.SessionID)
	if err != nil {
		return
	}
	balance := sess.Balance()
	itemID := req.ItemID

	txn, err := transaction.NewTransaction(transaction.Params{
		TransactionID:   uuid.New().String(),
		SessionID:       req.SessionID,
		TransactionType: transaction.TransactionTypePurchase,
		Amount:          q.FinalPrice,
		BalanceBefore:   balance,
		BalanceAfter:    balance,
		ItemID:          &itemID,
		Status:          transaction.TransactionStatusFailed,
		FailureReason:   cause.Error(),
	})
	if err == nil {
		err = s.transactionRepo.Save(ctx, txn)
	}
	if err != nil {
		s.logger.Error(ctx, "Failed to record failed purchase", err, map[string]interface{}{
			"session_id": req.SessionID,
		})
	}
}
