//go:build !gcloud

package eventrecorder

import (
	"context"
	"log/slog"
	"strconv"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

const measurement = "reminder_event"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ReminderEventRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "reminder event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, reminder event recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "reminder event recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
	}, nil
}

func toPoint(event domain.ReminderEvent) *write.Point {
	runID := event.RunID
	if runID == "" {
		runID = "default"
	}

	fields := map[string]any{
		"reminder_id": event.ReminderID,
	}
	if !event.RemindAt.IsZero() {
		fields["remind_at_unix"] = event.RemindAt.Unix()
	}

	return influxdb2.NewPoint(
		measurement,
		map[string]string{
			"run_id": runID,
			"event":  event.Type.String(),
			"reason": event.Reason,
			"id":     strconv.FormatInt(event.ReminderID, 10),
		},
		fields,
		event.OccurredAt,
	)
}

func (r *influxDBRecorder) RecordEvents(ctx context.Context, events []domain.ReminderEvent) error {
	if len(events) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(events))
	for _, event := range events {
		points = append(points, toPoint(event))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write reminder events to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int("event_count", len(events)),
		)
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return r.writeAPI.Flush(ctx)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
