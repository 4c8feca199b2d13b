// Package scheduler runs deferred tasks on a single worker goroutine.
//
// Tasks fire in due-time order; tasks with the same due time fire in the
// order they were scheduled.
package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"time"
)

// ErrClosed スケジューラ停止後の登録エラー
var ErrClosed = errors.New("scheduler closed")

type task struct {
	key string
	due time.Time
	seq uint64
	run func()
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler 遅延タスクを1つのワーカーで順番に実行する
type Scheduler struct {
	mu     sync.Mutex
	queue  taskQueue
	seq    uint64
	closed bool
	now    func() time.Time

	wake chan struct{}
	stop chan struct{}
	wg   sync.WaitGroup
}

// Option Schedulerの設定
type Option func(*Scheduler)

// WithClock 現在時刻の取得元を差し替える
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// New 新しいSchedulerを作成し、ワーカーを起動する
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		now:  time.Now,
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.wg.Add(1)
	go s.loop()

	return s
}

// Schedule delay経過後にfnを実行する。keyはCancelでまとめて取り消すために使う
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) error {
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.seq++
	heap.Push(&s.queue, &task{
		key: key,
		due: s.now().Add(delay),
		seq: s.seq,
		run: fn,
	})
	s.mu.Unlock()

	s.notify()
	return nil
}

// Cancel keyに紐づく未実行タスクを取り消し、取り消した件数を返す
func (s *Scheduler) Cancel(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.queue[:0]
	removed := 0
	for _, t := range s.queue {
		if t.key == key {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.queue); i++ {
		s.queue[i] = nil
	}
	s.queue = kept
	heap.Init(&s.queue)

	if removed > 0 {
		s.notify()
	}
	return removed
}

// Pending 未実行タスク数を返す
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Close ワーカーを停止する。未実行タスクは破棄される
func (s *Scheduler) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.queue = nil
	s.mu.Unlock()

	close(s.stop)
	s.wg.Wait()
	return nil
}

func (s *Scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		for _, t := range s.popDue(s.now()) {
			t.run()
		}

		if next, ok := s.nextDue(); ok {
			timer.Reset(next.Sub(s.now()))
		}

		select {
		case <-timer.C:
		case <-s.wake:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-s.stop:
			return
		}
	}
}

func (s *Scheduler) popDue(now time.Time) []*task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*task
	for len(s.queue) > 0 && !s.queue[0].due.After(now) {
		due = append(due, heap.Pop(&s.queue).(*task))
	}
	return due
}

func (s *Scheduler) nextDue() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}
