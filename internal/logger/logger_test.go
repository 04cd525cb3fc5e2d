package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	cfg := NewConfig("info", "json", "test-service", "1.0.0", "test", false)
	log := New(cfg, &buf)

	log.Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestTextLoggingRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	log := New(NewConfig("warn", "text", "svc", "dev", "dev", false), &buf)
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	id, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "test-req-123", id)

	_, ok = RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestFromContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	Init(NewConfig("info", "text", "svc", "dev", "test", false), &buf)

	FromContext(WithRequestID(context.Background(), "abc")).Info("scoped")
	assert.True(t, strings.Contains(buf.String(), "request_id=abc"))
}

func TestGenerateRequestID_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}

func TestWithRun(t *testing.T) {
	_, ok := RunFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithRun(context.Background(), TriggerScheduler)
	run, ok := RunFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, TriggerScheduler, run.Trigger)
	assert.NotEmpty(t, run.ID)

	other, _ := RunFromContext(WithRun(context.Background(), TriggerScheduler))
	assert.NotEqual(t, run.ID, other.ID)
}

func TestFromContext_AddsRunAttributes(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	Init(NewConfig("info", "json", "svc", "dev", "test", false), &buf)

	ctx := WithRun(WithRequestID(context.Background(), "req-1"), TriggerCron)
	run, _ := RunFromContext(ctx)
	FromContext(ctx).Info("scoring")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry[AttrKeyRequestID])
	assert.Equal(t, run.ID, entry[AttrKeyRunID])
	assert.Equal(t, TriggerCron, entry[AttrKeyTrigger])
}
