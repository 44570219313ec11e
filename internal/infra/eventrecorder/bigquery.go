//go:build gcloud

package eventrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt time.Time              `bigquery:"recorded_at"`
	OccurredAt time.Time              `bigquery:"occurred_at"`
	RunID      string                 `bigquery:"run_id"`
	ReminderID int64                  `bigquery:"reminder_id"`
	EventType  string                 `bigquery:"event_type"`
	Reason     bigquery.NullString    `bigquery:"reason"`
	RemindAt   bigquery.NullTimestamp `bigquery:"remind_at"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ReminderEventRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "reminder event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, reminder event recording disabled")
		return NewNoopRecorder(), nil
	}

	var opts []option.ClientOption
	if cfg.BigQueryCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.BigQueryCredentialsFile))
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID, opts...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, reminder event recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "reminder event recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
	}, nil
}

func (r *bigQueryRecorder) RecordEvents(ctx context.Context, events []domain.ReminderEvent) error {
	if len(events) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*bigQueryRecord, 0, len(events))
	for _, event := range events {
		rows = append(rows, &bigQueryRecord{
			RecordedAt: now,
			OccurredAt: event.OccurredAt,
			RunID:      event.RunID,
			ReminderID: event.ReminderID,
			EventType:  event.Type.String(),
			Reason:     bigquery.NullString{StringVal: event.Reason, Valid: event.Reason != ""},
			RemindAt:   bigquery.NullTimestamp{Timestamp: event.RemindAt, Valid: !event.RemindAt.IsZero()},
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert reminder events to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("event_count", len(events)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
