package reminder

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
	"github.com/KasumiMercury/primind-voice-assistant/internal/observability/metrics"
	"github.com/KasumiMercury/primind-voice-assistant/internal/observability/tracing"
	"github.com/KasumiMercury/primind-voice-assistant/internal/service/scheduler"
	"github.com/KasumiMercury/primind-voice-assistant/internal/service/timephrase"
)

const firePrefix = "Reminder: "

type Service struct {
	store     domain.ReminderStore
	parser    *timephrase.Parser
	scheduler Scheduler
	notifier  domain.Notifier
	recorder  domain.ReminderEventRecorder
	metrics   *metrics.ReminderMetrics
	runID     string
}

func NewService(
	store domain.ReminderStore,
	parser *timephrase.Parser,
	sched Scheduler,
	notifier domain.Notifier,
	recorder domain.ReminderEventRecorder,
	reminderMetrics *metrics.ReminderMetrics,
) *Service {
	return &Service{
		store:     store,
		parser:    parser,
		scheduler: sched,
		notifier:  notifier,
		recorder:  recorder,
		metrics:   reminderMetrics,
		runID:     uuid.NewString(),
	}
}

// CreateReminder resolves phrase against now, persists the reminder and arms
// its timer. The reminder is never reported as created unless the insert
// succeeded.
func (s *Service) CreateReminder(ctx context.Context, message, phrase string, now time.Time) (*CreateResult, error) {
	ctx, span := tracing.StartCreateReminderSpan(ctx, phrase)
	defer span.End()

	message = strings.TrimSpace(message)

	parsed, ok := s.parser.Parse(phrase, now)
	if !ok {
		err := &ParseError{Phrase: phrase}
		slog.InfoContext(ctx, "time phrase not recognized",
			slog.String("time_phrase", phrase),
		)
		s.recordCreated(ctx, outcomeUnparseable)
		tracing.RecordCreateResult(span, 0, time.Time{}, false, err)
		return nil, err
	}

	remindAt := domain.TruncateRemindAt(parsed.At)

	id, err := s.store.Insert(ctx, message, remindAt)
	if err != nil {
		storeErr := &StoreError{Op: "insert", Err: err}
		slog.ErrorContext(ctx, "failed to persist reminder",
			slog.Time("remind_at", remindAt),
			slog.String("error", err.Error()),
		)
		s.recordCreated(ctx, outcomeStoreError)
		tracing.RecordCreateResult(span, 0, remindAt, false, storeErr)
		return nil, storeErr
	}

	s.recordEvent(ctx, domain.ReminderEvent{
		ReminderID: id,
		Type:       domain.ReminderEventCreated,
		RemindAt:   remindAt,
	})

	result := &CreateResult{
		ID:       id,
		RemindAt: remindAt,
		Armed:    true,
	}

	err = s.scheduler.Arm(id, message, remindAt, s.onFire)
	if errors.Is(err, scheduler.ErrTimerCancelled) {
		// CancelReminder already retired the row.
		slog.InfoContext(ctx, "reminder cancelled before its timer was armed",
			slog.Int64("reminder_id", id),
		)
		result.Armed = false
		s.recordCreated(ctx, outcomeRetired)
		tracing.RecordCreateResult(span, id, remindAt, false, nil)
		return result, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to arm reminder, retiring it",
			slog.Int64("reminder_id", id),
			slog.Time("remind_at", remindAt),
			slog.String("error", err.Error()),
		)
		result.Armed = false
		if err := s.retire(ctx, id, remindAt, retireReasonArmFailed); err != nil {
			slog.WarnContext(ctx, "failed to retire unarmed reminder, next boot will retire it",
				slog.Int64("reminder_id", id),
				slog.String("error", err.Error()),
			)
		}
		s.recordCreated(ctx, outcomeRetired)
		tracing.RecordCreateResult(span, id, remindAt, false, nil)
		return result, nil
	}

	slog.InfoContext(ctx, "reminder created",
		slog.Int64("reminder_id", id),
		slog.String("rule", parsed.Rule),
		slog.Time("remind_at", remindAt),
	)
	s.recordCreated(ctx, outcomeCreated)
	tracing.RecordCreateResult(span, id, remindAt, true, nil)

	return result, nil
}

// Boot re-arms every pending reminder whose time is still ahead of now and
// retires the rest without firing them. Calling it again is harmless: ids
// that already have a timer are not armed twice.
func (s *Service) Boot(ctx context.Context, now time.Time) (*BootResult, error) {
	start := time.Now()
	ctx, span := tracing.StartBootSpan(ctx, now)
	defer span.End()

	pending, err := s.store.ListPending(ctx)
	if err != nil {
		storeErr := &StoreError{Op: "list pending", Err: err}
		tracing.RecordBootResult(span, 0, 0, 0, storeErr)
		return nil, storeErr
	}

	result := &BootResult{PendingCount: len(pending)}

	for _, r := range pending {
		if !r.IsDue(now) {
			err := s.scheduler.Arm(r.ID, r.Message, r.RemindAt, s.onFire)
			if err == nil {
				result.ArmedCount++
				continue
			}
			slog.WarnContext(ctx, "failed to re-arm pending reminder, retiring it",
				slog.Int64("reminder_id", r.ID),
				slog.Time("remind_at", r.RemindAt),
				slog.String("error", err.Error()),
			)
			if err := s.retire(ctx, r.ID, r.RemindAt, retireReasonArmFailed); err != nil {
				storeErr := &StoreError{Op: "mark triggered", Err: err}
				tracing.RecordBootResult(span, result.PendingCount, result.ArmedCount, result.RetiredCount, storeErr)
				return result, storeErr
			}
			result.RetiredCount++
			continue
		}

		if err := s.retire(ctx, r.ID, r.RemindAt, retireReasonMissed); err != nil {
			storeErr := &StoreError{Op: "mark triggered", Err: err}
			tracing.RecordBootResult(span, result.PendingCount, result.ArmedCount, result.RetiredCount, storeErr)
			return result, storeErr
		}
		result.RetiredCount++
	}

	if s.metrics != nil {
		s.metrics.RecordBootDuration(ctx, time.Since(start))
	}
	tracing.RecordBootResult(span, result.PendingCount, result.ArmedCount, result.RetiredCount, nil)

	slog.InfoContext(ctx, "pending reminders reconciled",
		slog.Int("pending_count", result.PendingCount),
		slog.Int("armed_count", result.ArmedCount),
		slog.Int("retired_count", result.RetiredCount),
	)

	return result, nil
}

func (s *Service) Pending(ctx context.Context) ([]domain.Reminder, error) {
	reminders, err := s.store.ListPending(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list pending", Err: err}
	}
	return reminders, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Reminder, error) {
	return s.store.Get(ctx, id)
}

// CancelReminder drops a pending reminder's timer and marks it triggered so it
// is never fired or re-armed. It reports false when the reminder had already
// fired or been retired, including when its timer fired after the row was read
// and is still persisting the outcome.
func (s *Service) CancelReminder(ctx context.Context, id int64) (bool, error) {
	r, err := s.store.Get(ctx, id)
	if errors.Is(err, domain.ErrReminderNotFound) {
		return false, err
	}
	if err != nil {
		return false, &StoreError{Op: "get", Err: err}
	}

	if r.Triggered {
		return false, nil
	}

	prior := s.scheduler.Cancel(id)
	if prior == scheduler.StateFired {
		slog.InfoContext(ctx, "reminder already fired, nothing to cancel",
			slog.Int64("reminder_id", id),
		)
		return false, nil
	}

	if err := s.retire(ctx, id, r.RemindAt, retireReasonCancelled); err != nil {
		return false, &StoreError{Op: "mark triggered", Err: err}
	}

	slog.InfoContext(ctx, "reminder cancelled",
		slog.Int64("reminder_id", id),
		slog.String("timer_state", prior.String()),
	)

	return true, nil
}

// onFire speaks the reminder and only then marks it triggered. A crash between
// the two leaves the row pending with an elapsed time, which the next Boot
// retires silently.
func (s *Service) onFire(ctx context.Context, id int64, message string) {
	ctx, span := tracing.StartFireSpan(ctx, id)
	defer span.End()

	if err := s.notifier.Speak(ctx, firePrefix+message); err != nil {
		slog.WarnContext(ctx, "failed to speak reminder",
			slog.Int64("reminder_id", id),
			slog.String("error", err.Error()),
		)
	}

	if err := s.store.MarkTriggered(ctx, id); err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to mark fired reminder as triggered",
			slog.Int64("reminder_id", id),
			slog.String("error", err.Error()),
		)
	}

	if s.metrics != nil {
		s.metrics.RecordFired(ctx)
	}
	s.recordEvent(ctx, domain.ReminderEvent{
		ReminderID: id,
		Type:       domain.ReminderEventFired,
	})

	slog.InfoContext(ctx, "reminder fired",
		slog.Int64("reminder_id", id),
	)
}

func (s *Service) retire(ctx context.Context, id int64, remindAt time.Time, reason string) error {
	if err := s.store.MarkTriggered(ctx, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "reminder retired without firing",
		slog.Int64("reminder_id", id),
		slog.Time("remind_at", remindAt),
		slog.String("reason", reason),
	)

	if s.metrics != nil {
		s.metrics.RecordRetired(ctx, reason)
	}
	s.recordEvent(ctx, domain.ReminderEvent{
		ReminderID: id,
		Type:       domain.ReminderEventRetired,
		Reason:     reason,
		RemindAt:   remindAt,
	})

	return nil
}

func (s *Service) recordCreated(ctx context.Context, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordCreated(ctx, outcome)
	}
}

func (s *Service) recordEvent(ctx context.Context, event domain.ReminderEvent) {
	if s.recorder == nil {
		return
	}

	event.RunID = s.runID
	event.OccurredAt = time.Now()

	if err := s.recorder.RecordEvents(ctx, []domain.ReminderEvent{event}); err != nil {
		slog.WarnContext(ctx, "failed to record reminder event",
			slog.Int64("reminder_id", event.ReminderID),
			slog.String("event_type", event.Type.String()),
			slog.String("error", err.Error()),
		)
	}
}
