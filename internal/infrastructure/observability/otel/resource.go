package otel

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"game-store/internal/infrastructure/config"
)

// ShutdownFunc プロバイダーの終了処理
type ShutdownFunc func(context.Context) error

// Setup トレーサーとメーターをまとめて初期化する。
// 返す終了処理は両方のエラーをまとめて返す
func Setup(ctx context.Context, cfg *config.OpenTelemetryConfig) (ShutdownFunc, error) {
	tracerShutdown, err := InitTracer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}
	meterShutdown, err := InitMeter(ctx, cfg)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to initialize meter: %w", err), tracerShutdown(ctx))
	}
	return func(ctx context.Context) error {
		return errors.Join(meterShutdown(ctx), tracerShutdown(ctx))
	}, nil
}

func newResource(ctx context.Context, cfg *config.OpenTelemetryConfig) (*resource.Resource, error) {
	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

func noopShutdown(context.Context) error { return nil }
