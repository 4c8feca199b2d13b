package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-store/internal/domain/transaction"
)

func newTopUp(t *testing.T, id, sessionID string, amount int64) *transaction.Transaction {
	t.Helper()
	tx, err := transaction.NewTransaction(transaction.Params{
		TransactionID:   id,
		SessionID:       sessionID,
		TransactionType: transaction.TransactionTypeTopUp,
		Amount:          amount,
		BalanceAfter:    amount,
		Status:          transaction.TransactionStatusCompleted,
	})
	require.NoError(t, err)
	return tx
}

func TestTransactionRepository_Save(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	tx := newTopUp(t, "tx1", "sess-1", 500)
	require.NoError(t, repo.Save(ctx, tx))
	assert.ErrorIs(t, repo.Save(ctx, tx), transaction.ErrDuplicateTransactionID)

	got, err := repo.FindByTransactionID(ctx, "tx1")
	require.NoError(t, err)
	assert.Same(t, tx, got)

	_, err = repo.FindByTransactionID(ctx, "missing")
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
}

func TestTransactionRepository_FindBySessionID(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Save(ctx, newTopUp(t, fmt.Sprintf("tx%d", i), "sess-1", int64(i*100))))
	}
	require.NoError(t, repo.Save(ctx, newTopUp(t, "other", "sess-2", 100)))

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []string
	}{
		{name: "正常系: 新しい順", limit: 10, offset: 0, want: []string{"tx5", "tx4", "tx3", "tx2", "tx1"}},
		{name: "正常系: limit", limit: 2, offset: 0, want: []string{"tx5", "tx4"}},
		{name: "正常系: offset", limit: 2, offset: 2, want: []string{"tx3", "tx2"}},
		{name: "正常系: 範囲外", limit: 2, offset: 10, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindBySessionID(ctx, "sess-1", tt.limit, tt.offset)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, tx := range got {
				ids = append(ids, tx.TransactionID())
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	require.NoError(t, repo.DeleteBySessionID(ctx, "sess-1"))
	got, err := repo.FindBySessionID(ctx, "sess-1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	_, err = repo.FindByTransactionID(ctx, "tx1")
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
	_, err = repo.FindByTransactionID(ctx, "other")
	assert.NoError(t, err)
}

func TestTransactionRepository_FindBySessionIDAndType(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	// tx1, tx3, tx5は入金、tx2, tx4は購入
	for i := 1; i <= 5; i++ {
		var tx *transaction.Transaction
		if i%2 == 1 {
			tx = newTopUp(t, fmt.Sprintf("tx%d", i), "sess-1", 100)
		} else {
			var err error
			tx, err = transaction.NewTransaction(transaction.Params{
				TransactionID:   fmt.Sprintf("tx%d", i),
				SessionID:       "sess-1",
				TransactionType: transaction.TransactionTypePurchase,
				Amount:          100,
				BalanceBefore:   100,
				Status:          transaction.TransactionStatusCompleted,
			})
			require.NoError(t, err)
		}
		require.NoError(t, repo.Save(ctx, tx))
	}

	tests := []struct {
		name      string
		filter    transaction.TransactionType
		limit     int
		offset    int
		want      []string
		wantTotal int
	}{
		{name: "正常系: 絞り込みなし", limit: 2, want: []string{"tx5", "tx4"}, wantTotal: 5},
		{name: "正常系: 入金のみ", filter: transaction.TransactionTypeTopUp, limit: 10, want: []string{"tx5", "tx3", "tx1"}, wantTotal: 3},
		{name: "正常系: 購入のoffset", filter: transaction.TransactionTypePurchase, limit: 10, offset: 1, want: []string{"tx2"}, wantTotal: 2},
		{name: "正常系: 範囲外でも総件数は返す", filter: transaction.TransactionTypeTopUp, limit: 10, offset: 5, want: []string{}, wantTotal: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := repo.FindBySessionIDAndType(ctx, "sess-1", tt.filter, tt.limit, tt.offset)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, tx := range got {
				ids = append(ids, tx.TransactionID())
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}
