package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

const (
	replyGreeting  = "Assistant started. Say 'Hey Assistant' to give a command."
	replyWake      = "Yes?"
	replyHeardNone = "I didn't hear anything."
	replyShutdown  = "Shutting down."
)

// Loop reads utterances from the session listener and feeds commands to the
// router until the user exits or input runs out.
type Loop struct {
	router          *Router
	session         *Session
	wakeWords       []string
	requireWakeWord bool
}

func NewLoop(router *Router, session *Session, wakeWords []string, requireWakeWord bool) *Loop {
	return &Loop{
		router:          router,
		session:         session,
		wakeWords:       wakeWords,
		requireWakeWord: requireWakeWord,
	}
}

// Run returns nil when the user exits or input ends.
func (l *Loop) Run(ctx context.Context) error {
	l.session.say(ctx, replyGreeting)

	for {
		text, err := l.session.Listener.Listen(ctx, 0)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrNothingHeard):
			continue
		case errors.Is(err, io.EOF):
			l.session.say(ctx, replyShutdown)
			return nil
		case ctx.Err() != nil:
			return nil
		default:
			return fmt.Errorf("listen: %w", err)
		}

		text = normalize(text)
		if text == "" {
			continue
		}

		cmd, woke := l.afterWakeWord(text)
		if !woke {
			if l.requireWakeWord {
				slog.DebugContext(ctx, "ignoring speech without wake word", slog.String("text", text))
				continue
			}
			cmd = text
		}

		if cmd == "" {
			cmd = l.session.ask(ctx, replyWake)
			if cmd == "" {
				l.session.say(ctx, replyHeardNone)
				continue
			}
		}

		if l.router.Dispatch(ctx, l.session, cmd) == ActionExit {
			return nil
		}
	}
}

// afterWakeWord returns whatever follows the first configured wake word.
func (l *Loop) afterWakeWord(text string) (string, bool) {
	for _, w := range l.wakeWords {
		if _, after, found := strings.Cut(text, w); found {
			return strings.Trim(after, " ,.!?"), true
		}
	}
	return "", false
}
