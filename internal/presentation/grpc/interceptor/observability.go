package interceptor

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	otelinfra "game-store/internal/infrastructure/observability/otel"
)

// ObservabilityInterceptor トレース・ログ・メトリクスを記録するインターセプター
func ObservabilityInterceptor(logger *otelinfra.Logger, metrics *otelinfra.Metrics) grpc.UnaryServerInterceptor {
	tracer := otel.Tracer("game-store-grpc")

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		ctx, span := tracer.Start(ctx, info.FullMethod,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("rpc.system", "grpc"), attribute.String("rpc.method", info.FullMethod)),
		)
		defer span.End()

		start := time.Now()
		resp, err := handler(ctx, req)
		duration := time.Since(start)

		code := status.Code(err)
		span.SetAttributes(attribute.String("rpc.grpc.status_code", code.String()))

		metrics.RecordRequest(ctx, "GRPC", info.FullMethod)
		metrics.RecordResponseTime(ctx, "GRPC", info.FullMethod, duration.Seconds())

		fields := map[string]interface{}{
			"method":      info.FullMethod,
			"code":        code.String(),
			"duration_ms": duration.Milliseconds(),
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			metrics.RecordError(ctx, code.String())
			logger.Warn(ctx, "gRPC request failed", fields)
			return resp, err
		}

		logger.Info(ctx, "gRPC request", fields)
		return resp, nil
	}
}
