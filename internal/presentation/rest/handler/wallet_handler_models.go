package handler

// BalanceResponse 残高レスポンス
// @Description 残高レスポンス
type BalanceResponse struct {
	SessionID string `json:"session_id"`
	Balance   int64  `json:"balance" example:"5000"`
}

// TopUpRequest 入金リクエスト
// @Description 入金リクエスト（1000以上で5%ボーナス）
type TopUpRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0" example:"1500"`
}

// TopUpResponse 入金レスポンス
// @Description 入金レスポンス
type TopUpResponse struct {
	TransactionID string `json:"transaction_id"`
	Deposited     int64  `json:"deposited" example:"1500"`
	BonusPercent  int    `json:"bonus_percent" example:"5"`
	Bonus         int64  `json:"bonus" example:"75"`
	Credited      int64  `json:"credited" example:"1575"`
	BalanceBefore int64  `json:"balance_before" example:"5000"`
	BalanceAfter  int64  `json:"balance_after" example:"6575"`
}

// PresetResponse 入金プリセット
// @Description 入金プリセット
type PresetResponse struct {
	Amount       int64 `json:"amount" example:"2500"`
	BonusPercent int   `json:"bonus_percent" example:"5"`
	Credited     int64 `json:"credited" example:"2625"`
}

// PresetsResponse 入金プリセット一覧レスポンス
// @Description 入金プリセット一覧
type PresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}
