package wallet

const (
	// MaxAmount 最大金額 (10兆)
	MaxAmount = 10_000_000_000_000
)

// Wallet ウォレットエンティティ。残高が負になることはない
type Wallet struct {
	balance int64 // 整数値（小数点なし）
}

// TopUpResult 入金結果
type TopUpResult struct {
	Deposited     int64
	BonusPercent  int
	Bonus         int64
	Credited      int64
	BalanceBefore int64
	BalanceAfter  int64
}

// NewWallet 新しいWalletエンティティを作成
func NewWallet(balance int64) (*Wallet, error) {
	if balance < 0 || balance > MaxAmount {
		return nil, ErrBalanceOutOfRange
	}
	return &Wallet{
		balance: balance,
	}, nil
}

// Balance 残高を返す
func (w *Wallet) Balance() int64 {
	return w.balance
}

// CanAfford 指定額を支払えるかどうかを返す
func (w *Wallet) CanAfford(amount int64) bool {
	return amount >= 0 && w.balance >= amount
}

// TopUp 入金する。ボーナスは入金額の段階に応じて加算される
func (w *Wallet) TopUp(amount int64) (*TopUpResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount > MaxAmount {
		return nil, ErrAmountTooLarge
	}
	credited := CreditFor(amount)
	// オーバーフローチェック
	if w.balance > MaxAmount-credited {
		return nil, ErrBalanceOutOfRange
	}

	before := w.balance
	w.balance += credited

	return &TopUpResult{
		Deposited:     amount,
		BonusPercent:  BonusPercentFor(amount),
		Bonus:         credited - amount,
		Credited:      credited,
		BalanceBefore: before,
		BalanceAfter:  w.balance,
	}, nil
}

// Debit 引き落とす。残高を超える額はすべて残高不足で、何も変更しない（部分引き落としなし）
func (w *Wallet) Debit(amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if !w.CanAfford(amount) {
		return ErrInsufficientFunds
	}
	w.balance -= amount
	return nil
}

// MustNewWallet テスト用ヘルパー: NewWalletを呼び出し、エラーが発生した場合はpanicする
func MustNewWallet(balance int64) *Wallet {
	w, err := NewWallet(balance)
	if err != nil {
		panic(err)
	}
	return w
}
