package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"game-store/internal/domain/session"
	"game-store/internal/domain/transaction"
	"game-store/internal/domain/wallet"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// WalletApplicationService ウォレットアプリケーションサービス
type WalletApplicationService struct {
	sessionRepo     session.SessionRepository
	transactionRepo transaction.TransactionRepository
	logger          *otelinfra.Logger
	metrics         *otelinfra.Metrics
	tracer          trace.Tracer
}

// NewWalletApplicationService 新しいWalletApplicationServiceを作成
func NewWalletApplicationService(
	sessionRepo session.SessionRepository,
	transactionRepo transaction.TransactionRepository,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *WalletApplicationService {
	return &WalletApplicationService{
		sessionRepo:     sessionRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
		metrics:         metrics,
		tracer:          otel.Tracer("wallet-service"),
	}
}

// GetBalance 残高を取得
func (s *WalletApplicationService) GetBalance(ctx context.Context, req *GetBalanceRequest) (*GetBalanceResponse, error) {
	ctx, span := s.tracer.Start(ctx, "WalletApplicationService.GetBalance")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", req.SessionID))

	sess, err := s.sessionRepo.FindByID(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	balance := sess.Balance()

	return &GetBalanceResponse{
		SessionID: sess.ID(),
		Balance:   balance,
	}, nil
}

// TopUp 入金（金額に応じたボーナスを加算）
func (s *WalletApplicationService) TopUp(ctx context.Context, req *TopUpRequest) (*TopUpResponse, error) {
	ctx, span := s.tracer.Start(ctx, "WalletApplicationService.TopUp")
	defer span.End()

	span.SetAttributes(
		attribute.String("session_id", req.SessionID),
		attribute.Int64("amount", req.Amount),
	)

	s.logger.Info(ctx, "Topping up wallet", map[string]interface{}{
		"session_id": req.SessionID,
		"amount":     req.Amount,
	})

	sess, err := s.sessionRepo.FindByID(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	result, err := sess.TopUp(req.Amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		if errors.Is(err, wallet.ErrInvalidAmount) || errors.Is(err, wallet.ErrAmountTooLarge) || errors.Is(err, wallet.ErrBalanceOutOfRange) {
			s.logger.Warn(ctx, "Top-up rejected", map[string]interface{}{
				"session_id": req.SessionID,
				"amount":     req.Amount,
				"error":      err.Error(),
			})
		} else {
			s.logger.Error(ctx, "Failed to top up", err, map[string]interface{}{
				"session_id": req.SessionID,
			})
		}
		s.metrics.RecordError(ctx, "top_up_rejected")
		return nil, err
	}

	transactionID := uuid.New().String()
	txn, err := transaction.NewTransaction(transaction.Params{
		TransactionID:   transactionID,
		SessionID:       sess.ID(),
		TransactionType: transaction.TransactionTypeTopUp,
		Amount:          result.Deposited,
		Bonus:           result.Bonus,
		BalanceBefore:   result.BalanceBefore,
		BalanceAfter:    result.BalanceAfter,
		Status:          transaction.TransactionStatusCompleted,
	})
	if err == nil {
		err = s.transactionRepo.Save(ctx, txn)
	}
	if err != nil {
		// 残高は更新済みのため、履歴の記録失敗はログのみ
		span.RecordError(err)
		s.logger.Error(ctx, "Failed to record top-up transaction", err, map[string]interface{}{
			"session_id":     sess.ID(),
			"transaction_id": transactionID,
		})
	}

	s.metrics.RecordTopUp(ctx, result.BonusPercent, result.Credited)
	s.metrics.RecordWalletBalance(ctx, "top_up", result.BalanceAfter)

	s.logger.Info(ctx, "Wallet topped up", map[string]interface{}{
		"session_id":     sess.ID(),
		"transaction_id": transactionID,
		"credited":       result.Credited,
		"bonus":          result.Bonus,
		"balance_after":  result.BalanceAfter,
	})

	return &TopUpResponse{
		TransactionID: transactionID,
		Deposited:     result.Deposited,
		BonusPercent:  result.BonusPercent,
		Bonus:         result.Bonus,
		Credited:      result.Credited,
		BalanceBefore: result.BalanceBefore,
		BalanceAfter:  result.BalanceAfter,
	}, nil
}

// ListPresets 入金プリセットとボーナスを返す
func (s *WalletApplicationService) ListPresets(ctx context.Context) *ListPresetsResponse {
	presets := make([]Preset, 0, len(wallet.TopUpPresets))
	for _, amount := range wallet.TopUpPresets {
		presets = append(presets, Preset{
			Amount:       amount,
			BonusPercent: wallet.BonusPercentFor(amount),
			Credited:     wallet.CreditFor(amount),
		})
	}
	return &ListPresetsResponse{Presets: presets}
}
