package speech

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

type ConsoleSpeaker struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleSpeaker(w io.Writer) *ConsoleSpeaker {
	return &ConsoleSpeaker{w: w}
}

func (s *ConsoleSpeaker) Speak(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.w, "Assistant: %s\n", text)
	return err
}

// ConsoleListener reads one line per Listen call. Lines are pulled by a single
// reader goroutine so a timed-out Listen does not lose the next line.
type ConsoleListener struct {
	lines chan string
	done  chan struct{}
	err   error
}

func NewConsoleListener(r io.Reader) *ConsoleListener {
	l := &ConsoleListener{
		lines: make(chan string),
		done:  make(chan struct{}),
	}

	go func() {
		defer close(l.done)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			l.lines <- scanner.Text()
		}
		l.err = scanner.Err()
	}()

	return l
}

func (l *ConsoleListener) Listen(ctx context.Context, timeout time.Duration) (string, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case line := <-l.lines:
		return strings.TrimSpace(line), nil
	case <-l.done:
		if l.err != nil {
			return "", l.err
		}
		return "", io.EOF
	case <-expired:
		return "", domain.ErrNothingHeard
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *ConsoleSpeaker) Name() string {
	return "console"
}
