package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestNewLogger(t *testing.T) {
	t.Run("adds trace and span ids from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "orders")

		traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
		spanID, _ := trace.SpanIDFromHex("0102030405060708")
		sc := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    traceID,
			SpanID:     spanID,
			TraceFlags: trace.FlagsSampled,
		})
		ctx := trace.ContextWithSpanContext(context.Background(), sc)

		logger.InfoContext(ctx, "order created", "order_id", 1)

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("failed to decode log line: %v", err)
		}
		if entry["trace_id"] != traceID.String() {
			t.Errorf("expected trace_id %s, got %v", traceID, entry["trace_id"])
		}
		if entry["span_id"] != spanID.String() {
			t.Errorf("expected span_id %s, got %v", spanID, entry["span_id"])
		}
		if entry["service"] != "orders" {
			t.Errorf("expected service orders, got %v", entry["service"])
		}
	})

	t.Run("omits ids without a span", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "gateway")

		logger.Info("request proxied")

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("failed to decode log line: %v", err)
		}
		if _, ok := entry["trace_id"]; ok {
			t.Error("expected no trace_id")
		}
	})
}
