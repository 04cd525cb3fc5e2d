package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	runKey
)

// Run identifies one ingestion or scoring pass across its log lines
type Run struct {
	ID      string
	Trigger string
}

// New builds a slog.Logger from the config, writing to w
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler.WithAttrs(cfg.BaseAttributes()))
}

// Init builds a logger and installs it as the slog default
func Init(cfg Config, w io.Writer) *slog.Logger {
	l := New(cfg, w)
	slog.SetDefault(l)
	return l
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// WithRun tags ctx with a fresh pipeline run started by trigger
func WithRun(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, runKey, Run{ID: uuid.NewString(), Trigger: trigger})
}

// RunFromContext returns the pipeline run carried by ctx, if any
func RunFromContext(ctx context.Context) (Run, bool) {
	run, ok := ctx.Value(runKey).(Run)
	return run, ok
}

// FromContext returns the default logger with the request and run
// attributes carried by ctx.
func FromContext(ctx context.Context) *slog.Logger {
	var attrs []any
	if id, ok := RequestIDFromContext(ctx); ok {
		attrs = append(attrs, AttrKeyRequestID, id)
	}
	if run, ok := RunFromContext(ctx); ok {
		attrs = append(attrs, AttrKeyRunID, run.ID, AttrKeyTrigger, run.Trigger)
	}
	if len(attrs) == 0 {
		return slog.Default()
	}
	return slog.Default().With(attrs...)
}
