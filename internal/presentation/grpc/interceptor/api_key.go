package interceptor

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"game-store/internal/infrastructure/auth"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// APIKeyInterceptor 管理サービス用のAPIキー認証インターセプター
// servicePrefixで始まるメソッドのみ検証する
func APIKeyInterceptor(guard *auth.AdminGuard, trust *auth.ProxyTrust, logger *otelinfra.Logger, servicePrefix string) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if !strings.HasPrefix(info.FullMethod, servicePrefix) {
			return handler(ctx, req)
		}

		md, _ := metadata.FromIncomingContext(ctx)
		var apiKey string
		if values := md.Get("x-api-key"); len(values) > 0 {
			apiKey = values[0]
		}
		clientIP := clientIPFromContext(ctx, md, trust)

		if err := guard.Check(apiKey, clientIP); err != nil {
			logger.Warn(ctx, "Admin API access denied", map[string]interface{}{
				"method": info.FullMethod,
				"ip":     clientIP,
				"reason": err.Error(),
			})
			if errors.Is(err, auth.ErrAdminDisabled) || errors.Is(err, auth.ErrIPNotAllowed) {
				return nil, status.Error(codes.PermissionDenied, err.Error())
			}
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}

		return handler(ctx, req)
	}
}

// clientIPFromContext 接続元アドレスを使う。信頼済みプロキシからの場合のみx-forwarded-forを参照
func clientIPFromContext(ctx context.Context, md metadata.MD, trust *auth.ProxyTrust) string {
	var remoteAddr string
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		remoteAddr = p.Addr.String()
	}
	return trust.ClientIP(remoteAddr, md.Get("x-forwarded-for"))
}
