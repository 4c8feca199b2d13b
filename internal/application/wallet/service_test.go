package wallet

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"game-store/internal/domain/session"
	"game-store/internal/domain/transaction"
	"game-store/internal/domain/wallet"
	otelinfra "game-store/internal/infrastructure/observability/otel"
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

// MockTransactionRepository モックトランザクションリポジトリ
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Save(ctx context.Context, t *transaction.Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*transaction.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindBySessionID(ctx context.Context, sessionID string, limit, offset int) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, sessionID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindBySessionIDAndType(ctx context.Context, sessionID string, transactionType transaction.TransactionType, limit, offset int) ([]*transaction.Transaction, int, error) {
	args := m.Called(ctx, sessionID, transactionType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*transaction.Transaction), args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestService(t *testing.T, sr *MockSessionRepository, tr *MockTransactionRepository) *WalletApplicationService {
	t.Helper()
	logger := otelinfra.NewLoggerWithWriter(otel.Tracer("test"), io.Discard, otelinfra.LogLevelDebug)
	metrics, err := otelinfra.NewMetrics("test")
	require.NoError(t, err)
	return NewWalletApplicationService(sr, tr, logger, metrics)
}

func TestWalletApplicationService_TopUp(t *testing.T) {
	tests := []struct {
		name        string
		req         *TopUpRequest
		setupMocks  func(*MockSessionRepository, *MockTransactionRepository) *session.Session
		want        *TopUpResponse
		wantBalance int64
		wantErr     error
	}{
		{
			name: "正常系: 5%ボーナス",
			req:  &TopUpRequest{SessionID: "sess-1", Amount: 1500},
			setupMocks: func(sr *MockSessionRepository, tr *MockTransactionRepository) *session.Session {
				s := session.MustNewSession("sess-1", 0)
				sr.On("FindByID", mock.Anything, "sess-1").Return(s, nil)
				tr.On("Save", mock.Anything, mock.MatchedBy(func(txn *transaction.Transaction) bool {
					return txn.TransactionType() == transaction.TransactionTypeTopUp &&
						txn.Amount() == 1500 && txn.Bonus() == 75 && txn.BalanceAfter() == 1575
				})).Return(nil)
				return s
			},
			want: &TopUpResponse{
				Deposited:     1500,
				BonusPercent:  5,
				Bonus:         75,
				Credited:      1575,
				BalanceBefore: 0,
				BalanceAfter:  1575,
			},
			wantBalance: 1575,
		},
		{
			name: "正常系: 履歴保存失敗でも残高は更新",
			req:  &TopUpRequest{SessionID: "sess-1", Amount: 500},
			setupMocks: func(sr *MockSessionRepository, tr *MockTransactionRepository) *session.Session {
				s := session.MustNewSession("sess-1", 100)
				sr.On("FindByID", mock.Anything, "sess-1").Return(s, nil)
				tr.On("Save", mock.Anything, mock.Anything).Return(errors.New("store error"))
				return s
			},
			want: &TopUpResponse{
				Deposited:     500,
				Credited:      500,
				BalanceBefore: 100,
				BalanceAfter:  600,
			},
			wantBalance: 600,
		},
		{
			name: "異常系: 金額が0",
			req:  &TopUpRequest{SessionID: "sess-1", Amount: 0},
			setupMocks: func(sr *MockSessionRepository, tr *MockTransactionRepository) *session.Session {
				s := session.MustNewSession("sess-1", 100)
				sr.On("FindByID", mock.Anything, "sess-1").Return(s, nil)
				return s
			},
			wantBalance: 100,
			wantErr:     wallet.ErrInvalidAmount,
		},
		{
			name: "異常系: セッションが存在しない",
			req:  &TopUpRequest{SessionID: "missing", Amount: 500},
			setupMocks: func(sr *MockSessionRepository, tr *MockTransactionRepository) *session.Session {
				sr.On("FindByID", mock.Anything, "missing").Return(nil, session.ErrSessionNotFound)
				return nil
			},
			wantErr: session.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := new(MockSessionRepository)
			tr := new(MockTransactionRepository)
			sess := tt.setupMocks(sr, tr)
			svc := newTestService(t, sr, tr)

			got, err := svc.TopUp(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if sess != nil {
					assert.Equal(t, tt.wantBalance, sess.Balance())
				}
				tr.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.TransactionID)
			tt.want.TransactionID = got.TransactionID
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantBalance, sess.Balance())
			sr.AssertExpectations(t)
			tr.AssertExpectations(t)
		})
	}
}

func TestWalletApplicationService_GetBalance(t *testing.T) {
	sr := new(MockSessionRepository)
	sr.On("FindByID", mock.Anything, "sess-1").Return(session.MustNewSession("sess-1", 5000), nil)
	sr.On("FindByID", mock.Anything, "missing").Return(nil, session.ErrSessionNotFound)
	svc := newTestService(t, sr, new(MockTransactionRepository))

	got, err := svc.GetBalance(context.Background(), &GetBalanceRequest{SessionID: "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got.Balance)

	_, err = svc.GetBalance(context.Background(), &GetBalanceRequest{SessionID: "missing"})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestWalletApplicationService_ListPresets(t *testing.T) {
	svc := newTestService(t, new(MockSessionRepository), new(MockTransactionRepository))
	got := svc.ListPresets(context.Background())

	require.Len(t, got.Presets, 6)
	assert.Equal(t, Preset{Amount: 500, BonusPercent: 0, Credited: 500}, got.Presets[0])
	assert.Equal(t, Preset{Amount: 1000, BonusPercent: 5, Credited: 1050}, got.Presets[1])
	assert.Equal(t, Preset{Amount: 10000, BonusPercent: 15, Credited: 11500}, got.Presets[5])
}
