package logging

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.Info("user registered", "user_id", "u-1", "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["user_id"] != "u-1" {
		t.Fatalf("unexpected user_id field: %v", fields["user_id"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}
}

func TestLogger_ContextAddsTraceFields(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.WarnContext(ctx, "slow query")

	fields := logs.All()[0].ContextMap()
	if fields["trace_id"] != traceID.String() {
		t.Fatalf("unexpected trace_id: %v", fields["trace_id"])
	}
	if fields["span_id"] != spanID.String() {
		t.Fatalf("unexpected span_id: %v", fields["span_id"])
	}
}

func TestLogger_MirrorReceivesInheritedFields(t *testing.T) {
	var (
		mu   sync.Mutex
		msgs []string
		args [][]any
	)
	SetMirror(func(_ context.Context, _ Level, msg string, kv ...any) {
		mu.Lock()
		defer mu.Unlock()
		msgs = append(msgs, msg)
		args = append(args, kv)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger := NewNop().With("component", "httpapi")
	logger.Error("request failed", "status", 500)

	mu.Lock()
	defer mu.Unlock()
	if len(msgs) != 1 || msgs[0] != "request failed" {
		t.Fatalf("unexpected mirrored messages: %v", msgs)
	}
	if len(args[0]) != 4 || args[0][0] != "component" || args[0][2] != "status" {
		t.Fatalf("unexpected mirrored args: %v", args[0])
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
