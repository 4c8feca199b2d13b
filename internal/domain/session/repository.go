package session

import (
	"context"
)

// SessionRepository セッションリポジトリインターフェース
type SessionRepository interface {
	// Create 新しいセッションを登録
	Create(ctx context.Context, s *Session) error

	// FindByID セッションIDでセッションを取得
	FindByID(ctx context.Context, id string) (*Session, error)

	// Delete セッションを破棄
	Delete(ctx context.Context, id string) error

	// Count 有効なセッション数を返す
	Count(ctx context.Context) (int, error)
}
