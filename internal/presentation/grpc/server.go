package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"

	"game-store/internal/infrastructure/auth"
	"game-store/internal/infrastructure/config"
	otelinfra "game-store/internal/infrastructure/observability/otel"
	"game-store/internal/presentation/grpc/handler"
	"game-store/internal/presentation/grpc/interceptor"
	"game-store/internal/presentation/grpc/pb"
)

// 認証なしで呼び出せるメソッド
var publicMethods = []string{
	pb.Storefront_StartSession_FullMethodName,
	pb.Storefront_ListGenres_FullMethodName,
	pb.Storefront_ResolvePromo_FullMethodName,
	pb.Admin_ListPromoCodes_FullMethodName,
	pb.Admin_CountSessions_FullMethodName,
}

// Server gRPCサーバー
type Server struct {
	server   *grpc.Server
	listener net.Listener
	logger   *otelinfra.Logger
	port     int
}

// NewServer 新しいgRPCサーバーを作成
func NewServer(cfg *config.Config, logger *otelinfra.Logger, metrics *otelinfra.Metrics, services handler.Services) (*Server, error) {
	port := cfg.Server.GRPCAddressPort()
	address := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	server, err := NewServerWithListener(cfg, logger, metrics, services, listener, port)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}
	return server, nil
}

// NewServerWithListener リスナーを指定してgRPCサーバーを作成（テスト用）
func NewServerWithListener(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	services handler.Services,
	listener net.Listener,
	port int,
) (*Server, error) {
	proxyTrust, err := auth.NewProxyTrust(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("failed to configure trusted proxies: %w", err)
	}
	adminGuard, err := auth.NewAdminGuard(&cfg.AdminAPI)
	if err != nil {
		return nil, fmt.Errorf("failed to configure admin API: %w", err)
	}

	opts := []grpc.ServerOption{
		// 外側から順に実行される
		grpc.ChainUnaryInterceptor(
			interceptor.ObservabilityInterceptor(logger, metrics),
			interceptor.APIKeyInterceptor(adminGuard, proxyTrust, logger, "/"+pb.AdminServiceName+"/"),
			interceptor.AuthInterceptor(&cfg.JWT, logger, publicMethods...),
		),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     15 * time.Second,
			MaxConnectionAge:      30 * time.Second,
			MaxConnectionAgeGrace: 5 * time.Second,
			Time:                  5 * time.Second,
			Timeout:               1 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	grpcServer := grpc.NewServer(opts...)

	pb.RegisterStorefrontServiceServer(grpcServer, handler.NewStorefrontHandler(services))
	pb.RegisterAdminServiceServer(grpcServer, handler.NewAdminHandler(services.Promo, services.Session))

	// リフレクションを有効化（開発環境用）
	if cfg.IsDevelopment() {
		reflection.Register(grpcServer)
	}

	return &Server{
		server:   grpcServer,
		listener: listener,
		logger:   logger,
		port:     port,
	}, nil
}

// Start サーバーを起動
func (s *Server) Start() error {
	s.logger.Info(context.Background(), "gRPC server starting", map[string]interface{}{
		"port": s.port,
	})
	if err := s.server.Serve(s.listener); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop サーバーを停止
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info(ctx, "Stopping gRPC server", nil)

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		s.logger.Info(ctx, "gRPC server stopped", nil)
		return nil
	case <-ctx.Done():
		// タイムアウトした場合は強制停止
		s.logger.Warn(ctx, "gRPC server shutdown timeout, forcing stop", nil)
		s.server.Stop()
		return ctx.Err()
	}
}

// Port サーバーのポート番号を返す
func (s *Server) Port() int {
	return s.port
}
