package support

import (
	"sync"
	"time"
)

const (
	// GreetingText 会話開始時のサポートからの挨拶
	GreetingText = "Hello! How can we help you?"
	// AcknowledgmentText ユーザーメッセージへの自動返信
	AcknowledgmentText = "Thank you for contacting us! A specialist will get back to you within 5 minutes."
)

// Transcript 追記のみのチャット履歴。自動返信は別ゴルーチンから追記されるためロックで保護する
type Transcript struct {
	mu       sync.RWMutex
	messages []Message
	now      func() time.Time
}

// NewTranscript 空のTranscriptを作成
func NewTranscript() *Transcript {
	return &Transcript{
		messages: make([]Message, 0),
		now:      time.Now,
	}
}

// NewTranscriptWithGreeting サポートの挨拶で始まるTranscriptを作成
func NewTranscriptWithGreeting() *Transcript {
	t := NewTranscript()
	t.append(GreetingText, SenderSupport)
	return t
}

// Messages 全メッセージのコピーを追記順で返す
func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len メッセージ数を返す
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Last 最後のメッセージを返す
func (t *Transcript) Last() (Message, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

func (t *Transcript) append(text string, sender Sender) Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	msg := Message{
		Text:   text,
		Sender: sender,
		SentAt: t.now(),
	}
	t.messages = append(t.messages, msg)
	return msg
}
