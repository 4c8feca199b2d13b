package support

import (
	"strings"
	"time"
)

// DefaultReplyDelay 自動返信までの既定の遅延
const DefaultReplyDelay = time.Second

// ScheduledReply 「遅延後にこのメッセージを追記する」という予約の記述。
// 実行はスケジューラが行い、ドメインは待機しない
type ScheduledReply struct {
	Delay   time.Duration
	Text    string
	Trigger Message
}

// Fire 自動返信をTranscriptに追記する
func (r *ScheduledReply) Fire(t *Transcript) Message {
	return t.append(r.Text, SenderSupport)
}

// Send ユーザーメッセージを即座に追記し、自動返信の予約を返す。
// 空白のみの入力は何もせずnilを返す（エラーではない）
func Send(t *Transcript, text string, delay time.Duration) (*Message, *ScheduledReply) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if delay < 0 {
		delay = 0
	}
	msg := t.append(text, SenderUser)
	return &msg, &ScheduledReply{
		Delay:   delay,
		Text:    AcknowledgmentText,
		Trigger: msg,
	}
}
