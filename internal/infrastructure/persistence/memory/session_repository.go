package memory

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"game-store/internal/domain/session"
)

// ExpireFunc 期限切れで破棄されたセッションの通知先
type ExpireFunc func(sessionID string)

// SessionRepository インメモリ実装のSessionRepository。
// 最終アクセスからttl経過したセッションはバックグラウンドで破棄される
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	ttl      time.Duration
	onExpire ExpireFunc
	tracer   trace.Tracer

	stopSweep chan struct{}
	wg        sync.WaitGroup
}

// NewSessionRepository 新しいSessionRepositoryを作成。
// sweepIntervalが0以下の場合は期限切れの掃除を行わない
func NewSessionRepository(ttl, sweepInterval time.Duration, onExpire ExpireFunc) *SessionRepository {
	r := &SessionRepository{
		sessions:  make(map[string]*session.Session),
		ttl:       ttl,
		onExpire:  onExpire,
		tracer:    otel.Tracer("session-repository"),
		stopSweep: make(chan struct{}),
	}

	if ttl > 0 && sweepInterval > 0 {
		r.wg.Add(1)
		go r.sweepLoop(sweepInterval)
	}

	return r
}

func (r *SessionRepository) sweepLoop(interval time.Duration) {
	defer r.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Sweep(time.Now())
		case <-r.stopSweep:
			return
		}
	}
}

// Sweep now時点で期限切れのセッションを破棄し、破棄したIDを返す
func (r *SessionRepository) Sweep(now time.Time) []string {
	r.mu.Lock()
	var expired []string
	for id, s := range r.sessions {
		if s.IsExpired(now, r.ttl) {
			delete(r.sessions, id)
			expired = append(expired, id)
		}
	}
	r.mu.Unlock()

	if r.onExpire != nil {
		for _, id := range expired {
			r.onExpire(id)
		}
	}
	return expired
}

// Create 新しいセッションを登録
func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	_, span := r.tracer.Start(ctx, "SessionRepository.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("store.session_id", s.ID()),
		attribute.String("store.operation", "CREATE"),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.ID()]; exists {
		span.RecordError(session.ErrDuplicateSession)
		span.SetStatus(otelcodes.Error, session.ErrDuplicateSession.Error())
		return session.ErrDuplicateSession
	}
	r.sessions[s.ID()] = s
	return nil
}

// FindByID セッションIDでセッションを取得し、最終アクセス日時を更新する
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*session.Session, error) {
	_, span := r.tracer.Start(ctx, "SessionRepository.FindByID")
	defer span.End()

	span.SetAttributes(
		attribute.String("store.session_id", id),
		attribute.String("store.operation", "GET"),
	)

	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()

	now := time.Now()
	if !ok || s.IsExpired(now, r.ttl) {
		span.SetStatus(otelcodes.Error, session.ErrSessionNotFound.Error())
		return nil, session.ErrSessionNotFound
	}
	s.Touch(now)
	return s, nil
}

// Delete セッションを破棄
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, span := r.tracer.Start(ctx, "SessionRepository.Delete")
	defer span.End()

	span.SetAttributes(
		attribute.String("store.session_id", id),
		attribute.String("store.operation", "DELETE"),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		span.SetStatus(otelcodes.Error, session.ErrSessionNotFound.Error())
		return session.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Count 期限内のセッション数を返す。掃除前の期限切れセッションは数えない
func (r *SessionRepository) Count(ctx context.Context) (int, error) {
	now := time.Now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, s := range r.sessions {
		if !s.IsExpired(now, r.ttl) {
			count++
		}
	}
	return count, nil
}

// Close 掃除用ゴルーチンを停止
func (r *SessionRepository) Close() error {
	select {
	case <-r.stopSweep:
	default:
		close(r.stopSweep)
	}
	r.wg.Wait()
	return nil
}
