package scheduler

import "errors"

var (
	ErrFireTimeElapsed = errors.New("fire time already elapsed")
	ErrTimerCancelled  = errors.New("reminder timer was cancelled")
)
