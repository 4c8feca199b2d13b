package session

import (
	"regexp"
	"sync"
	"time"

	"game-store/internal/domain/catalog"
	"game-store/internal/domain/pricing"
	"game-store/internal/domain/promo"
	"game-store/internal/domain/support"
	"game-store/internal/domain/wallet"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,64}$`)

// OwnedItem 購入済みアイテム
type OwnedItem struct {
	ItemID      int64
	Title       string
	PricePaid   int64
	PurchasedAt time.Time
}

// Receipt 購入結果
type Receipt struct {
	Quote         pricing.Quote
	Title         string
	BalanceBefore int64
	BalanceAfter  int64
	PurchasedAt   time.Time
}

// Session ひとりのユーザーのWalletとTranscriptを所有するスコープ。
// 同一セッションへの操作はロックで直列化される
type Session struct {
	mu          sync.Mutex
	id          string
	wallet      *wallet.Wallet
	transcript  *support.Transcript
	activePromo *promo.PromoCode
	library     []OwnedItem
	createdAt   time.Time
	lastSeenAt  time.Time
}

// NewSession 新しいSessionを作成
func NewSession(id string, initialBalance int64) (*Session, error) {
	if !idRegex.MatchString(id) {
		return nil, ErrInvalidSessionID
	}
	w, err := wallet.NewWallet(initialBalance)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Session{
		id:         id,
		wallet:     w,
		transcript: support.NewTranscriptWithGreeting(),
		library:    make([]OwnedItem, 0),
		createdAt:  now,
		lastSeenAt: now,
	}, nil
}

// ID セッションIDを返す
func (s *Session) ID() string {
	return s.id
}

// CreatedAt 作成日時を返す
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// LastSeenAt 最終アクセス日時を返す
func (s *Session) LastSeenAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeenAt
}

// Touch 最終アクセス日時を更新
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.lastSeenAt) {
		s.lastSeenAt = now
	}
}

// IsExpired 最終アクセスからttl以上経過しているかどうかを返す
func (s *Session) IsExpired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.LastSeenAt()) >= ttl
}

// Transcript サポートチャット履歴を返す（Transcript自体がロックを持つ）
func (s *Session) Transcript() *support.Transcript {
	return s.transcript
}

// Balance 残高を返す
func (s *Session) Balance() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallet.Balance()
}

// CanAfford 残高で指定額を支払えるかどうか
func (s *Session) CanAfford(amount int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallet.CanAfford(amount)
}

// TopUp ウォレットに入金
func (s *Session) TopUp(amount int64) (*wallet.TopUpResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallet.TopUp(amount)
}

// ActivePromo 適用中のプロモコードを返す（なければnil）
func (s *Session) ActivePromo() *promo.PromoCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activePromo
}

// ApplyPromo プロモコードを適用（既存の適用は置き換える）
func (s *Session) ApplyPromo(p *promo.PromoCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePromo = p
}

// ClearPromo プロモコードの適用を解除
func (s *Session) ClearPromo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePromo = nil
}

// Owns アイテムを購入済みかどうかを返す
func (s *Session) Owns(itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ownsLocked(itemID)
}

func (s *Session) ownsLocked(itemID int64) bool {
	for _, owned := range s.library {
		if owned.ItemID == itemID {
			return true
		}
	}
	return false
}

// Library 購入済みアイテムを購入順で返す
func (s *Session) Library() []OwnedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]OwnedItem, len(s.library))
	copy(out, s.library)
	return out
}

// Quote 現在のプロモ適用状態でアイテムの価格を計算
func (s *Session) Quote(item *catalog.Item) pricing.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Calculate(item, s.activePromo)
}

// Checkout アイテムを購入する。価格計算から引き落とし、ライブラリ追加、プロモ解除までを
// ロック内で行い、失敗時は何も変更しない
func (s *Session) Checkout(item *catalog.Item) (*Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ownsLocked(item.ID()) {
		return nil, ErrAlreadyOwned
	}

	quote := pricing.Calculate(item, s.activePromo)
	before := s.wallet.Balance()
	if err := s.wallet.Debit(quote.FinalPrice); err != nil {
		return nil, err
	}

	now := time.Now()
	s.library = append(s.library, OwnedItem{
		ItemID:      item.ID(),
		Title:       item.Title(),
		PricePaid:   quote.FinalPrice,
		PurchasedAt: now,
	})
	// プロモは購入ごとに消費される
	s.activePromo = nil

	return &Receipt{
		Quote:         quote,
		Title:         item.Title(),
		BalanceBefore: before,
		BalanceAfter:  s.wallet.Balance(),
		PurchasedAt:   now,
	}, nil
}

// MustNewSession テスト用ヘルパー: NewSessionを呼び出し、エラーが発生した場合はpanicする
func MustNewSession(id string, initialBalance int64) *Session {
	s, err := NewSession(id, initialBalance)
	if err != nil {
		panic(err)
	}
	return s
}
