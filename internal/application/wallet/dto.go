package wallet

// GetBalanceRequest 残高取得リクエスト
type GetBalanceRequest struct {
	SessionID string
}

// GetBalanceResponse 残高取得レスポンス
type GetBalanceResponse struct {
	SessionID string
	Balance   int64
}

// TopUpRequest 入金リクエスト
type TopUpRequest struct {
	SessionID string
	Amount    int64
}

// TopUpResponse 入金レスポンス
type TopUpResponse struct {
	TransactionID string
	Deposited     int64
	BonusPercent  int
	Bonus         int64
	Credited      int64
	BalanceBefore int64
	BalanceAfter  int64
}

// Preset 入金プリセット
type Preset struct {
	Amount       int64
	BonusPercent int
	Credited     int64
}

// ListPresetsResponse 入金プリセット一覧レスポンス
type ListPresetsResponse struct {
	Presets []Preset
}
