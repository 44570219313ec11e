package domain

import (
	"context"
	"time"
)

// Listener yields one utterance at a time. It returns ErrNothingHeard when
// the timeout passes without input and io.EOF once the input is exhausted.
type Listener interface {
	Listen(ctx context.Context, timeout time.Duration) (string, error)
}
