package support

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"game-store/internal/domain/session"
	"game-store/internal/domain/support"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// ReplyScheduler 自動返信を遅延実行する
type ReplyScheduler interface {
	Schedule(key string, delay time.Duration, fn func()) error
}

// SupportApplicationService サポートチャットアプリケーションサービス
type SupportApplicationService struct {
	sessionRepo session.SessionRepository
	scheduler   ReplyScheduler
	replyDelay  time.Duration
	logger      *otelinfra.Logger
	metrics     *otelinfra.Metrics
	tracer      trace.Tracer
}

// NewSupportApplicationService 新しいSupportApplicationServiceを作成
func NewSupportApplicationService(
	sessionRepo session.SessionRepository,
	scheduler ReplyScheduler,
	replyDelay time.Duration,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *SupportApplicationService {
	return &SupportApplicationService{
		sessionRepo: sessionRepo,
		scheduler:   scheduler,
		replyDelay:  replyDelay,
		logger:      logger,
		metrics:     metrics,
		tracer:      otel.Tracer("support-service"),
	}
}

// SendMessage ユーザーメッセージを追記し、自動返信を予約する
func (s *SupportApplicationService) SendMessage(ctx context.Context, req *SendMessageRequest) (*SendMessageResponse, error) {
	ctx, span := s.tracer.Start(ctx, "SupportApplicationService.SendMessage")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", req.SessionID))

	sess, err := s.sessionRepo.FindByID(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	transcript := sess.Transcript()
	msg, reply := support.Send(transcript, req.Text, s.replyDelay)
	if msg == nil {
		s.logger.Debug(ctx, "Ignored blank support message", map[string]interface{}{
			"session_id": req.SessionID,
		})
		return &SendMessageResponse{}, nil
	}
	s.metrics.RecordSupportMessage(ctx, support.SenderUser.String())

	sessionID := sess.ID()
	// 返信はリクエストのcontext終了後に実行される
	replyCtx := context.WithoutCancel(ctx)
	err = s.scheduler.Schedule(sessionID, reply.Delay, func() {
		reply.Fire(transcript)
		s.metrics.RecordSupportMessage(replyCtx, support.SenderSupport.String())
		s.logger.Debug(replyCtx, "Support auto-reply delivered", map[string]interface{}{
			"session_id": sessionID,
		})
	})
	if err != nil {
		// メッセージ自体は追記済み
		s.logger.Warn(ctx, "Failed to schedule support auto-reply", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}

	s.logger.Info(ctx, "Support message sent", map[string]interface{}{
		"session_id":     sessionID,
		"reply_delay_ms": reply.Delay.Milliseconds(),
	})

	view := toView(*msg)
	return &SendMessageResponse{
		Message:       &view,
		ReplyExpected: err == nil,
		ReplyDelay:    reply.Delay,
	}, nil
}

// GetTranscript 会話履歴を追記順で取得
func (s *SupportApplicationService) GetTranscript(ctx context.Context, req *GetTranscriptRequest) (*GetTranscriptResponse, error) {
	ctx, span := s.tracer.Start(ctx, "SupportApplicationService.GetTranscript")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", req.SessionID))

	sess, err := s.sessionRepo.FindByID(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	messages := sess.Transcript().Messages()
	resp := &GetTranscriptResponse{Messages: make([]MessageView, 0, len(messages))}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, toView(m))
	}
	return resp, nil
}

func toView(m support.Message) MessageView {
	return MessageView{
		Text:   m.Text,
		Sender: m.Sender.String(),
		SentAt: m.SentAt,
	}
}
