package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNewMetrics(t *testing.T) {
	otel.SetMeterProvider(noop.NewMeterProvider())

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	assert.NotNil(t, metrics.PurchaseCount)
	assert.NotNil(t, metrics.TopUpCount)
	assert.NotNil(t, metrics.TopUpCredited)
	assert.NotNil(t, metrics.WalletBalance)
	assert.NotNil(t, metrics.PromoResolutionCount)
	assert.NotNil(t, metrics.SupportMessageCount)
	assert.NotNil(t, metrics.SessionCount)
	assert.NotNil(t, metrics.RequestCount)
	assert.NotNil(t, metrics.ResponseTime)
	assert.NotNil(t, metrics.ErrorCount)
}

func TestMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)
	defer otel.SetMeterProvider(noop.NewMeterProvider())

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()
	metrics.RecordTopUp(ctx, 5, 1575)
	metrics.RecordTopUp(ctx, 0, 500)
	metrics.RecordPurchase(ctx, "RPG", "completed", true)
	metrics.RecordWalletBalance(ctx, "purchase", 4125)
	metrics.RecordPromoResolution(ctx, false)
	metrics.RecordSupportMessage(ctx, "user")
	metrics.RecordSessionStarted(ctx)
	metrics.RecordSessionEnded(ctx, "expired")
	metrics.RecordRequest(ctx, "GET", "/api/v1/catalog")
	metrics.RecordResponseTime(ctx, "GET", "/api/v1/catalog", 0.01)
	metrics.RecordError(ctx, "insufficient_funds")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	credited, ok := byName["top_up_credited_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range credited.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(2075), total)

	for _, name := range []string{
		"purchases_total", "top_ups_total", "wallet_balance", "promo_resolutions_total",
		"support_messages_total", "sessions_active", "requests_total", "response_time_seconds", "errors_total",
	} {
		assert.Contains(t, byName, name)
	}
}

func TestMetrics_WalletBalanceSeriesBounded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)
	defer otel.SetMeterProvider(noop.NewMeterProvider())

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()
	operations := []string{"session_start", "top_up", "purchase"}
	for i := 0; i < 5000; i++ {
		metrics.RecordWalletBalance(ctx, operations[i%len(operations)], int64(i))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var found bool
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "wallet_balance" {
			continue
		}
		found = true
		hist, ok := m.Data.(metricdata.Histogram[int64])
		require.True(t, ok)
		assert.Len(t, hist.DataPoints, len(operations))

		var count uint64
		for _, dp := range hist.DataPoints {
			count += dp.Count
			_, hasSession := dp.Attributes.Value("session_id")
			assert.False(t, hasSession)
		}
		assert.Equal(t, uint64(5000), count)
	}
	assert.True(t, found)
}
