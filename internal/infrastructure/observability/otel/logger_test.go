package otel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()
	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		min     LogLevel
		level   LogLevel
		message string
		fields  map[string]interface{}
		want    bool
	}{
		{name: "Infoレベルのログ", min: LogLevelInfo, level: LogLevelInfo, message: "test message", fields: map[string]interface{}{"key": "value"}, want: true},
		{name: "最小レベル未満は出力しない", min: LogLevelInfo, level: LogLevelDebug, message: "debug message", want: false},
		{name: "Warnレベルのログ", min: LogLevelDebug, level: LogLevelWarn, message: "warn message", fields: map[string]interface{}{"count": 42}, want: true},
		{name: "Errorレベルは常に出力", min: LogLevelError, level: LogLevelError, message: "error message", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter(noop.NewTracerProvider().Tracer("test"), &buf, tt.min)
			logger.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

			logger.Log(context.Background(), tt.level, tt.message, tt.fields)

			entries := decodeEntries(t, &buf)
			if !tt.want {
				assert.Empty(t, entries)
				return
			}
			require.Len(t, entries, 1)
			assert.Equal(t, string(tt.level), entries[0].Level)
			assert.Equal(t, tt.message, entries[0].Message)
			assert.Equal(t, "2024-01-02T03:04:05Z", entries[0].Timestamp)
			assert.Empty(t, entries[0].TraceID)
		})
	}
}

func TestLogger_LogWithTraceContext(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	tracer := tp.Tracer("test")

	var buf bytes.Buffer
	logger := NewLoggerWithWriter(tracer, &buf, LogLevelDebug)

	ctx, span := tracer.Start(context.Background(), "test-span")
	logger.Info(ctx, "inside span", nil)
	span.End()

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, span.SpanContext().TraceID().String(), entries[0].TraceID)
	assert.Equal(t, span.SpanContext().SpanID().String(), entries[0].SpanID)
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(noop.NewTracerProvider().Tracer("test"), &buf, LogLevelInfo)

	fields := map[string]interface{}{"session_id": "sess-1"}
	logger.Error(context.Background(), "failed", errors.New("boom"), fields)

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].Fields["error"])
	assert.Equal(t, "sess-1", entries[0].Fields["session_id"])
	// 呼び出し元のmapは変更しない
	_, mutated := fields["error"]
	assert.False(t, mutated)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, LogLevelError, ParseLogLevel("ERROR"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("verbose"))
	assert.Equal(t, LogLevelDebug, ParseLogLevel(" debug "))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerWithWriter(noop.NewTracerProvider().Tracer("test"), &buf, LogLevelDebug)
	child := parent.With(map[string]interface{}{"component": "scheduler", "env": "test"})
	grandchild := child.With(map[string]interface{}{"env": "override"})

	child.Info(context.Background(), "child", map[string]interface{}{"component": "caller"})
	grandchild.Warn(context.Background(), "grandchild", nil)
	parent.Info(context.Background(), "parent", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "caller", entry.Fields["component"])
	assert.Equal(t, "test", entry.Fields["env"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "scheduler", entry.Fields["component"])
	assert.Equal(t, "override", entry.Fields["env"])

	entry = LogEntry{}
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &entry))
	assert.Empty(t, entry.Fields)
}
