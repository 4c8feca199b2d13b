package session

import "errors"

var (
	// ErrSessionNotFound セッションが見つからないエラー
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidSessionID 無効なセッションIDエラー
	ErrInvalidSessionID = errors.New("invalid session id")
	// ErrAlreadyOwned 購入済みアイテムエラー
	ErrAlreadyOwned = errors.New("item already owned")
	// ErrDuplicateSession 重複セッションエラー
	ErrDuplicateSession = errors.New("duplicate session")
)
