package support

import (
	"time"
)

// Sender 送信者を表す値オブジェクト
type Sender string

const (
	SenderUser    Sender = "user"    // ユーザー
	SenderSupport Sender = "support" // サポート
)

// String 文字列表現を返す
func (s Sender) String() string {
	return string(s)
}

// Message チャットメッセージ（値オブジェクト）
type Message struct {
	Text   string
	Sender Sender
	SentAt time.Time
}
