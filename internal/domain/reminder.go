package domain

import (
	"time"
)

// RemindAtLayout is the persisted form of Reminder.RemindAt: local wall-clock,
// second precision, no zone offset.
const RemindAtLayout = "2006-01-02T15:04:05"

type Reminder struct {
	ID        int64
	Message   string
	RemindAt  time.Time
	Triggered bool
}

// IsDue reports whether the reminder's time is at or before now.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.RemindAt.After(now)
}

func TruncateRemindAt(t time.Time) time.Time {
	return t.Truncate(time.Second)
}

func FormatRemindAt(t time.Time) string {
	return t.In(time.Local).Format(RemindAtLayout)
}

func ParseRemindAt(value string) (time.Time, error) {
	return time.ParseInLocation(RemindAtLayout, value, time.Local)
}
