package interceptor

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"game-store/internal/infrastructure/auth"
	"game-store/internal/infrastructure/config"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

const adminPrefix = "/gamestore.v1.AdminService/"

func TestAPIKeyInterceptor(t *testing.T) {
	logger := otelinfra.NewLogger(noop.NewTracerProvider().Tracer("test"))

	tests := []struct {
		name     string
		cfg      config.AdminAPIConfig
		method   string
		trusted  []string
		md       metadata.MD
		peerAddr net.Addr
		wantCode codes.Code
	}{
		{
			name:     "正常系: 正しいAPIキー",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret"},
			method:   adminPrefix + "CountSessions",
			md:       metadata.Pairs("x-api-key", "secret"),
			wantCode: codes.OK,
		},
		{
			name:     "正常系: 管理サービス以外は検証しない",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret"},
			method:   "/gamestore.v1.StorefrontService/ListGenres",
			wantCode: codes.OK,
		},
		{
			name:     "正常系: CIDRで許可",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret", AllowedIPs: []string{"10.0.0.0/8"}},
			method:   adminPrefix + "CountSessions",
			md:       metadata.Pairs("x-api-key", "secret"),
			peerAddr: &net.TCPAddr{IP: net.ParseIP("10.1.2.3"), Port: 50000},
			wantCode: codes.OK,
		},
		{
			name:     "正常系: 信頼済みプロキシ経由のx-forwarded-for",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret", AllowedIPs: []string{"10.0.0.0/8"}},
			trusted:  []string{"192.168.0.1"},
			method:   adminPrefix + "CountSessions",
			md:       metadata.Pairs("x-api-key", "secret", "x-forwarded-for", "10.1.2.3"),
			peerAddr: &net.TCPAddr{IP: net.ParseIP("192.168.0.1"), Port: 50000},
			wantCode: codes.OK,
		},
		{
			name:     "異常系: 偽装したx-forwarded-forは無視される",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret", AllowedIPs: []string{"10.0.0.1"}},
			method:   adminPrefix + "CountSessions",
			md:       metadata.Pairs("x-api-key", "secret", "x-forwarded-for", "10.0.0.1"),
			peerAddr: &net.TCPAddr{IP: net.ParseIP("198.51.100.7"), Port: 50000},
			wantCode: codes.PermissionDenied,
		},
		{
			name:     "異常系: 接続元不明",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret", AllowedIPs: []string{"10.0.0.1"}},
			method:   adminPrefix + "CountSessions",
			md:       metadata.Pairs("x-api-key", "secret", "x-forwarded-for", "10.0.0.1"),
			wantCode: codes.PermissionDenied,
		},
		{
			name:     "正常系: 接続元アドレスで許可",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret", AllowedIPs: []string{"127.0.0.1"}},
			method:   adminPrefix + "CountSessions",
			md:       metadata.Pairs("x-api-key", "secret"),
			peerAddr: &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 50000},
			wantCode: codes.OK,
		},
		{
			name:     "異常系: 管理API無効",
			cfg:      config.AdminAPIConfig{Enabled: false, APIKey: "secret"},
			method:   adminPrefix + "CountSessions",
			md:       metadata.Pairs("x-api-key", "secret"),
			wantCode: codes.PermissionDenied,
		},
		{
			name:     "異常系: メタデータなし",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret"},
			method:   adminPrefix + "CountSessions",
			wantCode: codes.Unauthenticated,
		},
		{
			name:     "異常系: APIキーなし",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret"},
			method:   adminPrefix + "CountSessions",
			md:       metadata.MD{},
			wantCode: codes.Unauthenticated,
		},
		{
			name:     "異常系: APIキー不一致",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret"},
			method:   adminPrefix + "ListPromoCodes",
			md:       metadata.Pairs("x-api-key", "wrong"),
			wantCode: codes.Unauthenticated,
		},
		{
			name:     "異常系: 許可されていないIP",
			cfg:      config.AdminAPIConfig{Enabled: true, APIKey: "secret", AllowedIPs: []string{"10.0.0.0/8"}},
			method:   adminPrefix + "CountSessions",
			md:       metadata.Pairs("x-api-key", "secret"),
			peerAddr: &net.TCPAddr{IP: net.ParseIP("192.168.1.1"), Port: 50000},
			wantCode: codes.PermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.md != nil {
				ctx = metadata.NewIncomingContext(ctx, tt.md)
			}
			if tt.peerAddr != nil {
				ctx = peer.NewContext(ctx, &peer.Peer{Addr: tt.peerAddr})
			}

			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return "ok", nil
			}

			cfg := tt.cfg
			guard, err := auth.NewAdminGuard(&cfg)
			require.NoError(t, err)

			trust, err := auth.NewProxyTrust(tt.trusted)
			require.NoError(t, err)

			resp, err := APIKeyInterceptor(guard, trust, logger, adminPrefix)(ctx, nil, &grpc.UnaryServerInfo{FullMethod: tt.method}, handler)
			if tt.wantCode != codes.OK {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, status.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", resp)
		})
	}
}
