package scheduler

import "time"

// onceSchedule is a cron.Schedule that yields its instant exactly once. The
// runner asks for the next activation when the entry is registered and again
// after each run, so the second call retires the entry. An instant that is
// already behind the runner's clock on registration still fires immediately.
type onceSchedule struct {
	at       time.Time
	consumed bool
}

func (s *onceSchedule) Next(_ time.Time) time.Time {
	if s.consumed {
		return time.Time{}
	}
	s.consumed = true
	return s.at
}
