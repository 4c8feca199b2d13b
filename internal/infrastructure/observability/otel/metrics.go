package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// 購入数
	PurchaseCount metric.Int64Counter

	// 入金数と入金額（ボーナス込み）
	TopUpCount    metric.Int64Counter
	TopUpCredited metric.Int64Counter

	// 残高変更後のウォレット残高の分布（操作別）
	WalletBalance metric.Int64Histogram

	// プロモコード解決（found / not_found）
	PromoResolutionCount metric.Int64Counter

	// サポートメッセージ数（sender別）
	SupportMessageCount metric.Int64Counter

	// セッション開始・終了
	SessionCount metric.Int64UpDownCounter

	// リクエスト数
	RequestCount metric.Int64Counter

	// レスポンス時間
	ResponseTime metric.Float64Histogram

	// エラー率
	ErrorCount metric.Int64Counter
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	meter := otel.Meter(meterName)

	purchaseCount, err := meter.Int64Counter(
		"purchases_total",
		metric.WithDescription("Total number of purchase attempts"),
	)
	if err != nil {
		return nil, err
	}

	topUpCount, err := meter.Int64Counter(
		"top_ups_total",
		metric.WithDescription("Total number of wallet top-ups"),
	)
	if err != nil {
		return nil, err
	}

	topUpCredited, err := meter.Int64Counter(
		"top_up_credited_total",
		metric.WithDescription("Total amount credited by top-ups including bonus"),
	)
	if err != nil {
		return nil, err
	}

	walletBalance, err := meter.Int64Histogram(
		"wallet_balance",
		metric.WithDescription("Wallet balance after a mutation"),
		metric.WithExplicitBucketBoundaries(0, 500, 1000, 2500, 5000, 10000, 25000, 50000, 100000),
	)
	if err != nil {
		return nil, err
	}

	promoResolutionCount, err := meter.Int64Counter(
		"promo_resolutions_total",
		metric.WithDescription("Total number of promo code lookups"),
	)
	if err != nil {
		return nil, err
	}

	supportMessageCount, err := meter.Int64Counter(
		"support_messages_total",
		metric.WithDescription("Total number of support chat messages"),
	)
	if err != nil {
		return nil, err
	}

	sessionCount, err := meter.Int64UpDownCounter(
		"sessions_active",
		metric.WithDescription("Number of live storefront sessions"),
	)
	if err != nil {
		return nil, err
	}

	requestCount, err := meter.Int64Counter(
		"requests_total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"response_time_seconds",
		metric.WithDescription("Response time in seconds"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		PurchaseCount:        purchaseCount,
		TopUpCount:           topUpCount,
		TopUpCredited:        topUpCredited,
		WalletBalance:        walletBalance,
		PromoResolutionCount: promoResolutionCount,
		SupportMessageCount:  supportMessageCount,
		SessionCount:         sessionCount,
		RequestCount:         requestCount,
		ResponseTime:         responseTime,
		ErrorCount:           errorCount,
	}, nil
}

// RecordPurchase 購入を記録（outcome: completed, insufficient_funds など）
func (m *Metrics) RecordPurchase(ctx context.Context, genre, outcome string, withPromo bool) {
	m.PurchaseCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("genre", genre),
			attribute.String("outcome", outcome),
			attribute.Bool("promo", withPromo),
		),
	)
}

// RecordTopUp 入金を記録
func (m *Metrics) RecordTopUp(ctx context.Context, bonusPercent int, credited int64) {
	attrs := metric.WithAttributes(attribute.Int("bonus_percent", bonusPercent))
	m.TopUpCount.Add(ctx, 1, attrs)
	m.TopUpCredited.Add(ctx, credited, attrs)
}

// RecordWalletBalance 残高変更後のウォレット残高を記録
// operationは session_start, top_up, purchase のいずれか。セッションIDは属性にしない
func (m *Metrics) RecordWalletBalance(ctx context.Context, operation string, balance int64) {
	m.WalletBalance.Record(ctx, balance,
		metric.WithAttributes(
			attribute.String("operation", operation),
		),
	)
}

// RecordPromoResolution プロモコード解決を記録
func (m *Metrics) RecordPromoResolution(ctx context.Context, found bool) {
	outcome := "not_found"
	if found {
		outcome = "found"
	}
	m.PromoResolutionCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("outcome", outcome),
		),
	)
}

// RecordSupportMessage サポートメッセージを記録
func (m *Metrics) RecordSupportMessage(ctx context.Context, sender string) {
	m.SupportMessageCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("sender", sender),
		),
	)
}

// RecordSessionStarted セッション開始を記録
func (m *Metrics) RecordSessionStarted(ctx context.Context) {
	m.SessionCount.Add(ctx, 1)
}

// RecordSessionEnded セッション終了を記録
func (m *Metrics) RecordSessionEnded(ctx context.Context, reason string) {
	m.SessionCount.Add(ctx, -1,
		metric.WithAttributes(
			attribute.String("reason", reason),
		),
	)
}

// RecordRequest リクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordResponseTime レスポンス時間を記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, duration float64) {
	m.ResponseTime.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}
