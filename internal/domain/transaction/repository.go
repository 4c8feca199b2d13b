package transaction

import (
	"context"
)

// TransactionRepository トランザクションリポジトリインターフェース
type TransactionRepository interface {
	// Save トランザクションを保存
	Save(ctx context.Context, transaction *Transaction) error

	// FindByTransactionID トランザクションIDでトランザクションを取得
	FindByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)

	// FindBySessionID セッションIDでトランザクション一覧を新しい順に取得（ページネーション対応）
	FindBySessionID(ctx context.Context, sessionID string, limit, offset int) ([]*Transaction, error)

	// FindBySessionIDAndType 種別で絞り込んでからページングし、絞り込み後の総件数も返す。空の種別は全件
	FindBySessionIDAndType(ctx context.Context, sessionID string, transactionType TransactionType, limit, offset int) ([]*Transaction, int, error)

	// DeleteBySessionID セッションのトランザクションを破棄
	DeleteBySessionID(ctx context.Context, sessionID string) error
}
