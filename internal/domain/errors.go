package domain

import "errors"

var (
	ErrStoreUnavailable = errors.New("reminder store unavailable")
	ErrReminderNotFound = errors.New("reminder not found")
	ErrUnparseableTime  = errors.New("time phrase not recognized")
	ErrNothingHeard     = errors.New("nothing heard before timeout")
)
