package memory

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"game-store/internal/domain/transaction"
)

// TransactionRepository インメモリ実装のTransactionRepository
type TransactionRepository struct {
	mu        sync.RWMutex
	byID      map[string]*transaction.Transaction
	bySession map[string][]*transaction.Transaction // 追加順
	tracer    trace.Tracer
}

// NewTransactionRepository 新しいTransactionRepositoryを作成
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		byID:      make(map[string]*transaction.Transaction),
		bySession: make(map[string][]*transaction.Transaction),
		tracer:    otel.Tracer("transaction-repository"),
	}
}

// Save トランザクションを保存
func (r *TransactionRepository) Save(ctx context.Context, t *transaction.Transaction) error {
	_, span := r.tracer.Start(ctx, "TransactionRepository.Save")
	defer span.End()

	span.SetAttributes(
		attribute.String("store.transaction_id", t.TransactionID()),
		attribute.String("store.session_id", t.SessionID()),
		attribute.String("store.transaction_type", t.TransactionType().String()),
		attribute.Int64("store.amount", t.Amount()),
		attribute.String("store.status", t.Status().String()),
		attribute.String("store.operation", "INSERT"),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.TransactionID()]; exists {
		span.RecordError(transaction.ErrDuplicateTransactionID)
		span.SetStatus(otelcodes.Error, transaction.ErrDuplicateTransactionID.Error())
		return transaction.ErrDuplicateTransactionID
	}
	r.byID[t.TransactionID()] = t
	r.bySession[t.SessionID()] = append(r.bySession[t.SessionID()], t)
	return nil
}

// FindByTransactionID トランザクションIDでトランザクションを取得
func (r *TransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*transaction.Transaction, error) {
	_, span := r.tracer.Start(ctx, "TransactionRepository.FindByTransactionID")
	defer span.End()

	span.SetAttributes(
		attribute.String("store.transaction_id", transactionID),
		attribute.String("store.operation", "SELECT"),
	)

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[transactionID]
	if !ok {
		span.SetStatus(otelcodes.Error, transaction.ErrTransactionNotFound.Error())
		return nil, transaction.ErrTransactionNotFound
	}
	return t, nil
}

// FindBySessionID セッションIDでトランザクション一覧を新しい順に取得
func (r *TransactionRepository) FindBySessionID(ctx context.Context, sessionID string, limit, offset int) ([]*transaction.Transaction, error) {
	_, span := r.tracer.Start(ctx, "TransactionRepository.FindBySessionID")
	defer span.End()

	span.SetAttributes(
		attribute.String("store.session_id", sessionID),
		attribute.Int("store.limit", limit),
		attribute.Int("store.offset", offset),
		attribute.String("store.operation", "SELECT"),
	)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result, _ := r.page(sessionID, "", limit, offset)
	span.SetAttributes(attribute.Int("store.result_count", len(result)))
	return result, nil
}

// FindBySessionIDAndType 種別で絞り込んだ一覧を新しい順に取得
func (r *TransactionRepository) FindBySessionIDAndType(ctx context.Context, sessionID string, transactionType transaction.TransactionType, limit, offset int) ([]*transaction.Transaction, int, error) {
	_, span := r.tracer.Start(ctx, "TransactionRepository.FindBySessionIDAndType")
	defer span.End()

	span.SetAttributes(
		attribute.String("store.session_id", sessionID),
		attribute.String("store.transaction_type", transactionType.String()),
		attribute.Int("store.limit", limit),
		attribute.Int("store.offset", offset),
		attribute.String("store.operation", "SELECT"),
	)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result, total := r.page(sessionID, transactionType, limit, offset)
	span.SetAttributes(
		attribute.Int("store.result_count", len(result)),
		attribute.Int("store.total", total),
	)
	return result, total, nil
}

// page 新しい順に絞り込み、offsetとlimitを適用する。呼び出し側でロックを取得すること
func (r *TransactionRepository) page(sessionID string, filter transaction.TransactionType, limit, offset int) ([]*transaction.Transaction, int) {
	if offset < 0 {
		offset = 0
	}
	all := r.bySession[sessionID]
	result := make([]*transaction.Transaction, 0)
	total := 0
	for i := len(all) - 1; i >= 0; i-- {
		if !all[i].TransactionType().Matches(filter) {
			continue
		}
		total++
		if total <= offset || (limit > 0 && len(result) >= limit) {
			continue
		}
		result = append(result, all[i])
	}
	return result, total
}

// DeleteBySessionID セッションのトランザクションを破棄
func (r *TransactionRepository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	_, span := r.tracer.Start(ctx, "TransactionRepository.DeleteBySessionID")
	defer span.End()

	span.SetAttributes(
		attribute.String("store.session_id", sessionID),
		attribute.String("store.operation", "DELETE"),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.bySession[sessionID] {
		delete(r.byID, t.TransactionID())
	}
	delete(r.bySession, sessionID)
	return nil
}
