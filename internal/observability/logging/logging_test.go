package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := uuid.NewString()

	if got := ValidateAndExtractRequestID(valid); got != valid {
		t.Errorf("ValidateAndExtractRequestID(valid) = %q, want %q", got, valid)
	}

	for _, in := range []string{"", "not-a-uuid", "<script>"} {
		got := ValidateAndExtractRequestID(in)
		if got == in {
			t.Errorf("ValidateAndExtractRequestID(%q) kept invalid id", in)
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("ValidateAndExtractRequestID(%q) = %q, not a uuid", in, got)
		}
	}
}

func TestNewLoggerAddsContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{
		ServiceInfo:   ServiceInfo{Name: "voice-assistant", Version: "test"},
		Environment:   EnvProd,
		Level:         slog.LevelInfo,
		DefaultModule: Module("assistant"),
	})

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	ctx = WithRequestID(ctx, "req-1")

	logger.InfoContext(ctx, "hello", slog.Int64("reminder_id", 7))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}

	want := map[string]any{
		"msg":        "hello",
		"service":    "voice-assistant",
		"module":     "assistant",
		"request_id": "req-1",
		"trace_id":   span.SpanContext().TraceID().String(),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("entry[%q] = %v, want %v", k, entry[k], v)
		}
	}
}
