package history

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"game-store/internal/domain/session"
	"game-store/internal/domain/transaction"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// HistoryApplicationService 履歴アプリケーションサービス
type HistoryApplicationService struct {
	sessionRepo     session.SessionRepository
	transactionRepo transaction.TransactionRepository
	logger          *otelinfra.Logger
	tracer          trace.Tracer
}

// NewHistoryApplicationService 新しいHistoryApplicationServiceを作成
func NewHistoryApplicationService(
	sessionRepo session.SessionRepository,
	transactionRepo transaction.TransactionRepository,
	logger *otelinfra.Logger,
) *HistoryApplicationService {
	return &HistoryApplicationService{
		sessionRepo:     sessionRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
		tracer:          otel.Tracer("history-service"),
	}
}

// GetTransactionHistory トランザクション履歴を新しい順に取得
func (s *HistoryApplicationService) GetTransactionHistory(ctx context.Context, req *GetTransactionHistoryRequest) (*GetTransactionHistoryResponse, error) {
	ctx, span := s.tracer.Start(ctx, "HistoryApplicationService.GetTransactionHistory")
	defer span.End()

	span.SetAttributes(
		attribute.String("session_id", req.SessionID),
		attribute.Int("limit", req.Limit),
		attribute.Int("offset", req.Offset),
	)

	s.logger.Debug(ctx, "Getting transaction history", map[string]interface{}{
		"session_id":       req.SessionID,
		"limit":            req.Limit,
		"offset":           req.Offset,
		"transaction_type": req.TransactionType,
	})

	typeFilter, err := transaction.ParseTypeFilter(req.TransactionType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("%w: %v", transaction.ErrInvalidTransaction, err)
	}

	// バリデーション
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	if req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	if _, err := s.sessionRepo.FindByID(ctx, req.SessionID); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	transactions, total, err := s.transactionRepo.FindBySessionIDAndType(ctx, req.SessionID, typeFilter, req.Limit, req.Offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to get transaction history", err, map[string]interface{}{
			"session_id": req.SessionID,
		})
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}

	span.SetAttributes(attribute.Int("history.total", total))

	return &GetTransactionHistoryResponse{
		Transactions: transactions,
		Total:        total,
		Limit:        req.Limit,
		Offset:       req.Offset,
	}, nil
}

// GetLibrary 購入済みアイテムを購入順で取得
func (s *HistoryApplicationService) GetLibrary(ctx context.Context, req *GetLibraryRequest) (*GetLibraryResponse, error) {
	ctx, span := s.tracer.Start(ctx, "HistoryApplicationService.GetLibrary")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", req.SessionID))

	sess, err := s.sessionRepo.FindByID(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	owned := sess.Library()
	resp := &GetLibraryResponse{Items: make([]LibraryEntry, 0, len(owned))}
	for _, o := range owned {
		resp.Items = append(resp.Items, LibraryEntry{
			ItemID:      o.ItemID,
			Title:       o.Title,
			PricePaid:   o.PricePaid,
			PurchasedAt: o.PurchasedAt,
		})
		resp.TotalSpent += o.PricePaid
	}
	return resp, nil
}
