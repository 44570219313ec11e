package command

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

type captureSpeaker struct {
	mu    sync.Mutex
	lines []string
}

func (c *captureSpeaker) Speak(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, text)
	return nil
}

func (c *captureSpeaker) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

// scriptedListener replays utterances; an empty string stands for a timeout.
// It reports io.EOF once the script is exhausted.
type scriptedListener struct {
	script []string
}

func (s *scriptedListener) Listen(_ context.Context, _ time.Duration) (string, error) {
	if len(s.script) == 0 {
		return "", io.EOF
	}
	next := s.script[0]
	s.script = s.script[1:]
	if next == "" {
		return "", domain.ErrNothingHeard
	}
	return next, nil
}

func newTestSession(script ...string) (*Session, *captureSpeaker) {
	speaker := &captureSpeaker{}
	return &Session{
		Speaker:       speaker,
		Listener:      &scriptedListener{script: script},
		ListenTimeout: time.Second,
	}, speaker
}

type blockingListener struct{}

func (blockingListener) Listen(ctx context.Context, _ time.Duration) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}
