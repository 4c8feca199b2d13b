package service

import (
	"context"

	"game-store/internal/domain/catalog"
	"game-store/internal/domain/pricing"
	"game-store/internal/domain/session"
)

// PurchaseService 購入関連のドメインサービス
type PurchaseService struct {
	sessionRepo session.SessionRepository
	catalog     *catalog.Catalog
}

// NewPurchaseService 新しいPurchaseServiceを作成
func NewPurchaseService(sessionRepo session.SessionRepository, c *catalog.Catalog) *PurchaseService {
	return &PurchaseService{
		sessionRepo: sessionRepo,
		catalog:     c,
	}
}

// Quote セッションの適用中プロモを考慮したアイテム価格を計算（状態は変更しない）
func (s *PurchaseService) Quote(ctx context.Context, sessionID string, itemID int64) (pricing.Quote, error) {
	sess, item, err := s.load(ctx, sessionID, itemID)
	if err != nil {
		return pricing.Quote{}, err
	}
	return sess.Quote(item), nil
}

// Purchase アイテムを購入
func (s *PurchaseService) Purchase(ctx context.Context, sessionID string, itemID int64) (*session.Receipt, error) {
	sess, item, err := s.load(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}
	return sess.Checkout(item)
}

func (s *PurchaseService) load(ctx context.Context, sessionID string, itemID int64) (*session.Session, *catalog.Item, error) {
	item, err := s.catalog.FindByID(itemID)
	if err != nil {
		return nil, nil, err
	}
	sess, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return sess, item, nil
}
