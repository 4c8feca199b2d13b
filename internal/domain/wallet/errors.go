package wallet

import "errors"

var (
	// ErrInvalidAmount 無効な金額エラー
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds 残高不足エラー
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAmountTooLarge 金額が大きすぎるエラー
	ErrAmountTooLarge = errors.New("amount too large")
	// ErrBalanceOutOfRange 残高が範囲外エラー
	ErrBalanceOutOfRange = errors.New("balance out of range")
)
