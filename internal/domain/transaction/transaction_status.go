package transaction

import "fmt"

// TransactionStatus 操作の結果
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed" // 残高は変化しない
)

// NewTransactionStatus 文字列からTransactionStatusを作成
func NewTransactionStatus(s string) (TransactionStatus, error) {
	ts := TransactionStatus(s)
	if !ts.Valid() {
		return "", fmt.Errorf("invalid transaction status: %q", s)
	}
	return ts, nil
}

func (ts TransactionStatus) String() string {
	return string(ts)
}

// Valid 有効なステータスかどうかを返す
func (ts TransactionStatus) Valid() bool {
	switch ts {
	case TransactionStatusCompleted, TransactionStatusFailed:
		return true
	}
	return false
}

// IsFailed 失敗した操作かどうか
func (ts TransactionStatus) IsFailed() bool {
	return ts == TransactionStatusFailed
}
