package reminder

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

const (
	retireReasonMissed    = "missed_while_offline"
	retireReasonArmFailed = "arm_failed"
	retireReasonCancelled = "cancelled"

	outcomeCreated     = "created"
	outcomeRetired     = "retired"
	outcomeUnparseable = "unparseable"
	outcomeStoreError  = "store_error"
)

type CreateResult struct {
	ID       int64     `json:"id"`
	RemindAt time.Time `json:"remind_at"`
	// Armed is false when the resolved time had already elapsed by the time
	// the timer was registered, or when the reminder was cancelled before its
	// timer could be registered. Either way it is retired unfired.
	Armed bool `json:"armed"`
}

type BootResult struct {
	PendingCount int `json:"pending_count"`
	ArmedCount   int `json:"armed_count"`
	RetiredCount int `json:"retired_count"`
}

// ParseError reports a time phrase outside the supported grammar.
type ParseError struct {
	Phrase string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", domain.ErrUnparseableTime.Error(), e.Phrase)
}

func (e *ParseError) Unwrap() error {
	return domain.ErrUnparseableTime
}

// StoreError reports a persistence failure. It matches
// domain.ErrStoreUnavailable as well as the underlying cause.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("reminder store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{domain.ErrStoreUnavailable, e.Err}
}
