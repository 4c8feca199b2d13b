package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"game-store/internal/domain/session"
	"game-store/internal/domain/transaction"
	"game-store/internal/infrastructure/auth"
	"game-store/internal/infrastructure/config"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// ReplyCanceler セッション終了時に未送信の自動返信を取り消す
type ReplyCanceler interface {
	Cancel(key string) int
}

// SessionApplicationService セッションアプリケーションサービス
type SessionApplicationService struct {
	sessionRepo     session.SessionRepository
	transactionRepo transaction.TransactionRepository
	replies         ReplyCanceler
	jwtConfig       *config.JWTConfig
	initialBalance  int64
	logger          *otelinfra.Logger
	metrics         *otelinfra.Metrics
	tracer          trace.Tracer
}

// NewSessionApplicationService 新しいSessionApplicationServiceを作成
func NewSessionApplicationService(
	sessionRepo session.SessionRepository,
	transactionRepo transaction.TransactionRepository,
	replies ReplyCanceler,
	jwtConfig *config.JWTConfig,
	initialBalance int64,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *SessionApplicationService {
	return &SessionApplicationService{
		sessionRepo:     sessionRepo,
		transactionRepo: transactionRepo,
		replies:         replies,
		jwtConfig:       jwtConfig,
		initialBalance:  initialBalance,
		logger:          logger,
		metrics:         metrics,
		tracer:          otel.Tracer("session-service"),
	}
}

// StartSession 新しいセッションを開始し、セッションIDを含むJWTトークンを発行
func (s *SessionApplicationService) StartSession(ctx context.Context) (*StartSessionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "SessionApplicationService.StartSession")
	defer span.End()

	sess, err := session.NewSession(uuid.New().String(), s.initialBalance)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(ctx, "Failed to create session", err, nil)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	span.SetAttributes(attribute.String("session_id", sess.ID()))

	token, err := s.generateToken(sess.ID())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(ctx, "Failed to generate token", err, map[string]interface{}{
			"session_id": sess.ID(),
		})
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(ctx, "Failed to store session", err, map[string]interface{}{
			"session_id": sess.ID(),
		})
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.metrics.RecordSessionStarted(ctx)
	s.metrics.RecordWalletBalance(ctx, "session_start", sess.Balance())
	s.logger.Info(ctx, "Session started", map[string]interface{}{
		"session_id": sess.ID(),
		"balance":    sess.Balance(),
	})

	return &StartSessionResponse{
		SessionID: sess.ID(),
		Token:     token,
		ExpiresIn: int64(s.jwtConfig.Expiration.Seconds()),
		TokenType: "Bearer",
		Balance:   sess.Balance(),
	}, nil
}

// GetSession セッションの概要を取得
func (s *SessionApplicationService) GetSession(ctx context.Context, req *GetSessionRequest) (*GetSessionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "SessionApplicationService.GetSession")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", req.SessionID))

	sess, err := s.sessionRepo.FindByID(ctx, req.SessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn(ctx, "Session not found", map[string]interface{}{
			"session_id": req.SessionID,
		})
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	resp := &GetSessionResponse{
		SessionID:    sess.ID(),
		Balance:      sess.Balance(),
		LibraryCount: len(sess.Library()),
		MessageCount: sess.Transcript().Len(),
		CreatedAt:    sess.CreatedAt(),
	}
	if p := sess.ActivePromo(); p != nil {
		resp.ActivePromo = p.Code()
	}
	return resp, nil
}

// EndSession セッションを終了し、ウォレットとチャット履歴を破棄
func (s *SessionApplicationService) EndSession(ctx context.Context, req *EndSessionRequest) error {
	ctx, span := s.tracer.Start(ctx, "SessionApplicationService.EndSession")
	defer span.End()

	span.SetAttributes(attribute.String("session_id", req.SessionID))

	if err := s.sessionRepo.Delete(ctx, req.SessionID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn(ctx, "Failed to end session", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.release(ctx, req.SessionID, "ended")
	s.logger.Info(ctx, "Session ended", map[string]interface{}{
		"session_id": req.SessionID,
	})
	return nil
}

// CountSessions 有効なセッション数を取得（管理API用）
func (s *SessionApplicationService) CountSessions(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "SessionApplicationService.CountSessions")
	defer span.End()

	count, err := s.sessionRepo.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	span.SetAttributes(attribute.Int("session_count", count))
	return count, nil
}

// HandleExpired 期限切れで破棄されたセッションの後始末
func (s *SessionApplicationService) HandleExpired(sessionID string) {
	ctx := context.Background()
	s.release(ctx, sessionID, "expired")
	s.logger.Info(ctx, "Session expired", map[string]interface{}{
		"session_id": sessionID,
	})
}

func (s *SessionApplicationService) release(ctx context.Context, sessionID, reason string) {
	cancelled := s.replies.Cancel(sessionID)
	if err := s.transactionRepo.DeleteBySessionID(ctx, sessionID); err != nil {
		s.logger.Error(ctx, "Failed to discard transactions", err, map[string]interface{}{
			"session_id": sessionID,
		})
	}
	s.metrics.RecordSessionEnded(ctx, reason)
	if cancelled > 0 {
		s.logger.Debug(ctx, "Pending replies cancelled", map[string]interface{}{
			"session_id": sessionID,
			"count":      cancelled,
		})
	}
}

// generateToken セッションIDを含むトークンを発行
func (s *SessionApplicationService) generateToken(sessionID string) (string, error) {
	return auth.SignSessionToken(s.jwtConfig, sessionID, time.Now())
}
