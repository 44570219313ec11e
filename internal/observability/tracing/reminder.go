package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/KasumiMercury/primind-voice-assistant/internal/service/reminder"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

func StartCreateReminderSpan(ctx context.Context, phrase string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.create",
		trace.WithAttributes(
			attribute.String("reminder.time_phrase", phrase),
		),
	)
}

func StartBootSpan(ctx context.Context, now time.Time) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.boot",
		trace.WithAttributes(
			attribute.String("boot.now", now.Format(time.RFC3339)),
		),
	)
}

func StartFireSpan(ctx context.Context, reminderID int64) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.fire",
		trace.WithAttributes(
			attribute.Int64("reminder.id", reminderID),
		),
	)
}

func RecordCreateResult(span trace.Span, reminderID int64, remindAt time.Time, armed bool, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		attribute.Int64("reminder.id", reminderID),
		attribute.String("reminder.remind_at", remindAt.Format(time.RFC3339)),
		attribute.Bool("reminder.armed", armed),
	)
	span.SetStatus(codes.Ok, "")
}

func RecordBootResult(span trace.Span, pendingCount, armedCount, retiredCount int, err error) {
	span.SetAttributes(
		attribute.Int("boot.pending_count", pendingCount),
		attribute.Int("boot.armed_count", armedCount),
		attribute.Int("boot.retired_count", retiredCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
