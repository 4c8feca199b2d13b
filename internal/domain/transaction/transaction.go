package transaction

import (
	"regexp"
	"time"
)

const (
	// MaxAmount 最大金額 (10兆)
	MaxAmount = 10_000_000_000_000
)

var (
	idRegex        = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]{1,255}$`)
	sessionIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,64}$`)
)

// Transaction セッション内の入金・購入の記録
type Transaction struct {
	transactionID   string
	sessionID       string
	transactionType TransactionType
	amount          int64 // 入金額 or 支払額
	bonus           int64 // 入金ボーナス（購入時は0）
	balanceBefore   int64
	balanceAfter    int64
	itemID          *int64
	promoCode       *string
	status          TransactionStatus
	failureReason   string
	createdAt       time.Time
}

// Params NewTransactionの入力
type Params struct {
	TransactionID   string
	SessionID       string
	TransactionType TransactionType
	Amount          int64
	Bonus           int64
	BalanceBefore   int64
	BalanceAfter    int64
	ItemID          *int64
	PromoCode       *string
	Status          TransactionStatus
	FailureReason   string
}

// NewTransaction 新しいTransactionエンティティを作成
func NewTransaction(p Params) (*Transaction, error) {
	if !idRegex.MatchString(p.TransactionID) {
		return nil, ErrInvalidTransactionID
	}
	if !sessionIDRegex.MatchString(p.SessionID) {
		return nil, ErrInvalidSessionID
	}
	if !p.TransactionType.Valid() || !p.Status.Valid() {
		return nil, ErrInvalidTransaction
	}
	// 無料アイテムの購入は0円
	if p.Amount < 0 || p.Amount > MaxAmount || p.Bonus < 0 || p.Bonus > MaxAmount {
		return nil, ErrInvalidAmount
	}
	if p.TransactionType == TransactionTypeTopUp && p.Amount == 0 {
		return nil, ErrInvalidAmount
	}
	if p.BalanceBefore < 0 || p.BalanceBefore > MaxAmount || p.BalanceAfter < 0 || p.BalanceAfter > MaxAmount {
		return nil, ErrBalanceOutOfRange
	}
	if p.BalanceAfter != p.expectedBalanceAfter() {
		return nil, ErrInvalidTransaction
	}

	return &Transaction{
		transactionID:   p.TransactionID,
		sessionID:       p.SessionID,
		transactionType: p.TransactionType,
		amount:          p.Amount,
		bonus:           p.Bonus,
		balanceBefore:   p.BalanceBefore,
		balanceAfter:    p.BalanceAfter,
		itemID:          p.ItemID,
		promoCode:       p.PromoCode,
		status:          p.Status,
		failureReason:   p.FailureReason,
		createdAt:       time.Now(),
	}, nil
}

// 失敗した操作は残高を変えない
func (p Params) expectedBalanceAfter() int64 {
	switch {
	case p.Status.IsFailed():
		return p.BalanceBefore
	case p.TransactionType.IsCredit():
		return p.BalanceBefore + p.Amount + p.Bonus
	default:
		return p.BalanceBefore - p.Amount
	}
}

// TransactionID トランザクションIDを返す
func (t *Transaction) TransactionID() string {
	return t.transactionID
}

// SessionID セッションIDを返す
func (t *Transaction) SessionID() string {
	return t.sessionID
}

// TransactionType トランザクションタイプを返す
func (t *Transaction) TransactionType() TransactionType {
	return t.transactionType
}

// Amount 金額を返す
func (t *Transaction) Amount() int64 {
	return t.amount
}

// Bonus 入金ボーナスを返す
func (t *Transaction) Bonus() int64 {
	return t.bonus
}

// BalanceBefore 処理前の残高を返す
func (t *Transaction) BalanceBefore() int64 {
	return t.balanceBefore
}

// BalanceAfter 処理後の残高を返す
func (t *Transaction) BalanceAfter() int64 {
	return t.balanceAfter
}

// ItemID 購入アイテムIDを返す（入金時はnil）
func (t *Transaction) ItemID() *int64 {
	return t.itemID
}

// PromoCode 購入時に適用されたプロモコードを返す
func (t *Transaction) PromoCode() *string {
	return t.promoCode
}

// Status ステータスを返す
func (t *Transaction) Status() TransactionStatus {
	return t.status
}

// FailureReason 失敗理由を返す
func (t *Transaction) FailureReason() string {
	return t.failureReason
}

// CreatedAt 作成日時を返す
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}
