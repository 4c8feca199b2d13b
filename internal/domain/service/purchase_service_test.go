package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"game-store/internal/domain/catalog"
	"game-store/internal/domain/promo"
	"game-store/internal/domain/session"
	"game-store/internal/domain/wallet"
)

// MockSessionRepository モックセッションリポジトリ
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id string) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewCatalog([]*catalog.Item{
		catalog.MustNewItem(1, "Cyber Nexus 2077", catalog.GenreRPG, 2499, decimal.RequireFromString("9.5"), 30, ""),
		catalog.MustNewItem(6, "Battle Royale Pro", catalog.GenreShooter, 0, decimal.RequireFromString("8.9"), 0, ""),
	})
	require.NoError(t, err)
	return c
}

func TestPurchaseService_Purchase(t *testing.T) {
	tests := []struct {
		name        string
		itemID      int64
		setupMocks  func(*MockSessionRepository) *session.Session
		wantPrice   int64
		wantBalance int64
		wantErr     error
	}{
		{
			name:   "正常系: プロモ適用で購入",
			itemID: 1,
			setupMocks: func(m *MockSessionRepository) *session.Session {
				s := session.MustNewSession("sess-1", 5000)
				s.ApplyPromo(promo.MustNewPromoCode("GAME50", 50, ""))
				m.On("FindByID", mock.Anything, "sess-1").Return(s, nil)
				return s
			},
			wantPrice:   875,
			wantBalance: 4125,
		},
		{
			name:   "異常系: 残高不足",
			itemID: 1,
			setupMocks: func(m *MockSessionRepository) *session.Session {
				s := session.MustNewSession("sess-1", 100)
				m.On("FindByID", mock.Anything, "sess-1").Return(s, nil)
				return s
			},
			wantBalance: 100,
			wantErr:     wallet.ErrInsufficientFunds,
		},
		{
			name:   "異常系: アイテムが存在しない",
			itemID: 99,
			setupMocks: func(m *MockSessionRepository) *session.Session {
				return nil
			},
			wantErr: catalog.ErrItemNotFound,
		},
		{
			name:   "異常系: セッションが存在しない",
			itemID: 1,
			setupMocks: func(m *MockSessionRepository) *session.Session {
				m.On("FindByID", mock.Anything, "sess-1").Return(nil, session.ErrSessionNotFound)
				return nil
			},
			wantErr: session.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSessionRepository)
			sess := tt.setupMocks(repo)
			svc := NewPurchaseService(repo, testCatalog(t))

			receipt, err := svc.Purchase(context.Background(), "sess-1", tt.itemID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if sess != nil {
					assert.Equal(t, tt.wantBalance, sess.Balance())
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantPrice, receipt.Quote.FinalPrice)
				assert.Equal(t, tt.wantBalance, sess.Balance())
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestPurchaseService_Quote(t *testing.T) {
	repo := new(MockSessionRepository)
	s := session.MustNewSession("sess-1", 1000)
	repo.On("FindByID", mock.Anything, "sess-1").Return(s, nil)
	svc := NewPurchaseService(repo, testCatalog(t))

	q, err := svc.Quote(context.Background(), "sess-1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1750), q.FinalPrice)
	assert.Equal(t, int64(1000), s.Balance())
	assert.False(t, s.CanAfford(q.FinalPrice))

	free, err := svc.Quote(context.Background(), "sess-1", 6)
	require.NoError(t, err)
	assert.True(t, s.CanAfford(free.FinalPrice))
}
