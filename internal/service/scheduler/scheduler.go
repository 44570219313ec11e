package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// FireFunc is invoked at most once per armed reminder id.
type FireFunc func(ctx context.Context, id int64, message string)

// State is the lifecycle position of one reminder id in the registry.
type State int

const (
	StateUnknown State = iota
	StateArmed
	StateFired
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateFired:
		return "fired"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

type timer struct {
	entryID cron.EntryID
	fireAt  time.Time
	state   State
}

type Option func(*Scheduler)

// WithClock overrides the clock used to reject elapsed fire times.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// Scheduler keeps one armed one-shot timer per reminder id on a single cron
// runner. Per id the timer moves Armed -> Fired or Armed -> Cancelled; both end
// states are terminal and further Arm calls for that id are ignored.
//
// Terminal entries stay in the registry for the life of the process so that a
// fired or cancelled id can never be armed again. Store ids are never reused,
// so the registry grows by one small entry per reminder handled in this run.
type Scheduler struct {
	mu      sync.Mutex
	timers  map[int64]*timer
	cron    *cron.Cron
	now     func() time.Time
	baseCtx context.Context
	started bool
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		timers:  make(map[int64]*timer),
		now:     time.Now,
		baseCtx: context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cron = cron.New(
		cron.WithLocation(time.Local),
		cron.WithChain(cron.Recover(cronLogger{})),
	)

	return s
}

// Start launches the runner. Callbacks receive a context derived from ctx that
// is not cancelled with it, so a firing in progress can finish persisting
// during shutdown.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}

	s.baseCtx = context.WithoutCancel(ctx)
	s.started = true
	s.cron.Start()

	slog.InfoContext(ctx, "reminder scheduler started",
		slog.Int("armed_count", s.armedCountLocked()),
	)
}

// Stop halts the runner and waits for running callbacks until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = false
	s.mu.Unlock()

	done := s.cron.Stop()

	select {
	case <-done.Done():
		slog.InfoContext(ctx, "reminder scheduler stopped")
		return nil
	case <-ctx.Done():
		slog.WarnContext(ctx, "reminder scheduler stop timed out with callbacks still running")
		return ctx.Err()
	}
}

// Arm schedules onFire for id at fireAt. Arming an id that is already armed
// or fired is a no-op. Arming a cancelled id returns ErrTimerCancelled, and a
// fireAt that is not in the future is rejected with ErrFireTimeElapsed.
func (s *Scheduler) Arm(id int64, message string, fireAt time.Time, onFire FireFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[id]; ok {
		if existing.state == StateCancelled {
			return ErrTimerCancelled
		}
		slog.Debug("reminder timer already registered, skipping arm",
			slog.Int64("reminder_id", id),
			slog.Time("fire_at", existing.fireAt),
			slog.String("state", existing.state.String()),
		)
		return nil
	}

	if !fireAt.After(s.now()) {
		return ErrFireTimeElapsed
	}

	// The registry lock is held across registration so that the job, which
	// takes the same lock before firing, always observes its own entry.
	entryID := s.cron.Schedule(&onceSchedule{at: fireAt}, cron.FuncJob(func() {
		s.fire(id, message, onFire)
	}))

	s.timers[id] = &timer{
		entryID: entryID,
		fireAt:  fireAt,
		state:   StateArmed,
	}

	slog.Debug("reminder timer armed",
		slog.Int64("reminder_id", id),
		slog.Time("fire_at", fireAt),
	)

	return nil
}

// Cancel moves id to the cancelled state and returns the state it was in
// before. A live timer is removed without firing. An id the registry has not
// seen yet is recorded as cancelled so that a later Arm for it is refused.
// Fired and cancelled ids are left untouched.
func (s *Scheduler) Cancel(id int64) State {
	s.mu.Lock()
	t, ok := s.timers[id]
	if !ok {
		s.timers[id] = &timer{state: StateCancelled}
		s.mu.Unlock()
		slog.Debug("reminder timer cancelled before arm",
			slog.Int64("reminder_id", id),
		)
		return StateUnknown
	}
	if t.state != StateArmed {
		prior := t.state
		s.mu.Unlock()
		return prior
	}
	t.state = StateCancelled
	entryID := t.entryID
	s.mu.Unlock()

	s.cron.Remove(entryID)

	slog.Debug("reminder timer cancelled",
		slog.Int64("reminder_id", id),
	)

	return StateArmed
}

// State reports where id currently is in its lifecycle.
func (s *Scheduler) State(id int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		return t.state
	}
	return StateUnknown
}

func (s *Scheduler) IsArmed(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[id]
	return ok && t.state == StateArmed
}

// Len returns the number of timers still waiting to fire.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.armedCountLocked()
}

func (s *Scheduler) armedCountLocked() int {
	count := 0
	for _, t := range s.timers {
		if t.state == StateArmed {
			count++
		}
	}
	return count
}

func (s *Scheduler) fire(id int64, message string, onFire FireFunc) {
	s.mu.Lock()
	t, ok := s.timers[id]
	if !ok || t.state != StateArmed {
		s.mu.Unlock()
		return
	}
	t.state = StateFired
	entryID := t.entryID
	ctx := s.baseCtx
	s.mu.Unlock()

	s.cron.Remove(entryID)

	onFire(ctx, id, message)
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error(msg, append(keysAndValues, slog.String("error", err.Error()))...)
}
