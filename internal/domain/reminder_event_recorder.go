package domain

import (
	"context"
	"time"
)

type ReminderEventType string

const (
	ReminderEventCreated ReminderEventType = "created"
	ReminderEventFired   ReminderEventType = "fired"
	ReminderEventRetired ReminderEventType = "retired"
)

func (t ReminderEventType) String() string {
	return string(t)
}

type ReminderEvent struct {
	RunID      string
	ReminderID int64
	Type       ReminderEventType
	Reason     string
	RemindAt   time.Time
	OccurredAt time.Time
}

type ReminderEventRecorder interface {
	RecordEvents(ctx context.Context, events []ReminderEvent) error
	Flush(ctx context.Context) error
	Close() error
}
