package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	reminderMeterName = "reminder.service"
)

type ReminderMetrics struct {
	created      metric.Int64Counter
	fired        metric.Int64Counter
	retired      metric.Int64Counter
	bootDuration metric.Float64Histogram
}

// NewReminderMetrics registers the reminder instruments. armedCount, when
// non-nil, backs an observable gauge of timers waiting to fire.
func NewReminderMetrics(armedCount func() int) (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	created, err := meter.Int64Counter(
		"reminder_created_total",
		metric.WithDescription("Reminder creation attempts by outcome"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	fired, err := meter.Int64Counter(
		"reminder_fired_total",
		metric.WithDescription("Reminders delivered at their scheduled time"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	retired, err := meter.Int64Counter(
		"reminder_retired_total",
		metric.WithDescription("Reminders marked triggered without being delivered"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	bootDuration, err := meter.Float64Histogram(
		"reminder_boot_duration_seconds",
		metric.WithDescription("Time spent reconciling pending reminders at startup"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	if armedCount != nil {
		_, err = meter.Int64ObservableGauge(
			"reminder_armed",
			metric.WithDescription("Reminder timers currently armed"),
			metric.WithUnit("{reminder}"),
			metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
				o.Observe(int64(armedCount()))
				return nil
			}),
		)
		if err != nil {
			return nil, err
		}
	}

	return &ReminderMetrics{
		created:      created,
		fired:        fired,
		retired:      retired,
		bootDuration: bootDuration,
	}, nil
}

func (m *ReminderMetrics) RecordCreated(ctx context.Context, outcome string) {
	m.created.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordFired(ctx context.Context) {
	m.fired.Add(ctx, 1)
}

func (m *ReminderMetrics) RecordRetired(ctx context.Context, reason string) {
	m.retired.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

func (m *ReminderMetrics) RecordBootDuration(ctx context.Context, duration time.Duration) {
	m.bootDuration.Record(ctx, duration.Seconds())
}
