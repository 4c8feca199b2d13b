package transaction

import (
	"fmt"
	"strings"
)

// TransactionType 残高を動かした操作の種類
type TransactionType string

const (
	TransactionTypeTopUp    TransactionType = "topup"    // 入金（ボーナス込みで加算）
	TransactionTypePurchase TransactionType = "purchase" // 購入（支払額を減算）
)

// NewTransactionType 文字列からTransactionTypeを作成。前後の空白と大文字小文字は無視する
func NewTransactionType(s string) (TransactionType, error) {
	tt := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !tt.Valid() {
		return "", fmt.Errorf("invalid transaction type: %q", s)
	}
	return tt, nil
}

// ParseTypeFilter 履歴の絞り込み条件を解析。空文字列は絞り込みなし
func ParseTypeFilter(s string) (TransactionType, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return NewTransactionType(s)
}

func (tt TransactionType) String() string {
	return string(tt)
}

// Valid 有効なトランザクションタイプかどうかを返す
func (tt TransactionType) Valid() bool {
	return tt == TransactionTypeTopUp || tt == TransactionTypePurchase
}

// IsCredit 残高が増える操作かどうか
func (tt TransactionType) IsCredit() bool {
	return tt == TransactionTypeTopUp
}

// Matches 絞り込み条件に一致するか。空の条件はすべてに一致する
func (tt TransactionType) Matches(filter TransactionType) bool {
	return filter == "" || tt == filter
}
