package interceptor

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"game-store/internal/infrastructure/auth"
	"game-store/internal/infrastructure/config"
	otelinfra "game-store/internal/infrastructure/observability/otel"
)

type sessionIDKey struct{}

// SessionIDFromContext 認証済みセッションIDを返す
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(string)
	return id, ok && id != ""
}

// ContextWithSessionID セッションIDをコンテキストに設定
func ContextWithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// AuthInterceptor JWT認証インターセプター
// publicMethodsに含まれるフルメソッド名は認証をスキップする
func AuthInterceptor(cfg *config.JWTConfig, logger *otelinfra.Logger, publicMethods ...string) grpc.UnaryServerInterceptor {
	public := make(map[string]struct{}, len(publicMethods))
	for _, m := range publicMethods {
		public[m] = struct{}{}
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if _, ok := public[info.FullMethod]; ok {
			return handler(ctx, req)
		}

		var header string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("authorization"); len(values) > 0 {
				header = values[0]
			}
		}

		sessionID, err := auth.Authenticate(cfg, header)
		if err != nil {
			logger.Warn(ctx, "Authentication failed", map[string]interface{}{
				"method": info.FullMethod,
				"error":  err.Error(),
			})
			return nil, status.Error(codes.Unauthenticated, auth.Reason(err))
		}

		return handler(ContextWithSessionID(ctx, sessionID), req)
	}
}
