package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=reminder_store.go -destination=reminder_store_mock.go -package=domain

// ReminderStore is the durable record of reminders. Implementations report
// I/O failures wrapped in ErrStoreUnavailable.
type ReminderStore interface {
	Insert(ctx context.Context, message string, remindAt time.Time) (int64, error)
	ListPending(ctx context.Context) ([]Reminder, error)
	MarkTriggered(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*Reminder, error)
	Ping(ctx context.Context) error
	Close() error
}
