package otel

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	apimetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"

	"game-store/internal/infrastructure/config"
)

// InitMeter メータープロバイダーをグローバルに設定する
func InitMeter(ctx context.Context, cfg *config.OpenTelemetryConfig) (ShutdownFunc, error) {
	exporter, err := newMetricExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if exporter == nil {
		return noopShutdown, nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var readerOpts []metric.PeriodicReaderOption
	if cfg.MetricsInterval > 0 {
		readerOpts = append(readerOpts, metric.WithInterval(cfg.MetricsInterval))
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exporter, readerOpts...)),
		metric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	return mp.Shutdown, nil
}

func newMetricExporter(ctx context.Context, cfg *config.OpenTelemetryConfig) (metric.Exporter, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	switch strings.ToLower(cfg.MetricsExporter) {
	case "", "none":
		return nil, nil
	case "otlp":
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpointURL(cfg.OTLPEndpoint)}
		if cfg.OTLPInsecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exporter, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
		}
		return exporter, nil
	default:
		return nil, fmt.Errorf("unsupported metrics exporter: %s", cfg.MetricsExporter)
	}
}

// Meter メーターを取得
func Meter(name string) apimetric.Meter {
	return otel.Meter(name)
}
