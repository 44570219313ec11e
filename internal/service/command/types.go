package command

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-voice-assistant/internal/client"
	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
	"github.com/KasumiMercury/primind-voice-assistant/internal/service/reminder"
)

//go:generate mockgen -source=types.go -destination=types_mock.go -package=command

type ReminderCreator interface {
	CreateReminder(ctx context.Context, message, phrase string, now time.Time) (*reminder.CreateResult, error)
}

type WeatherProvider interface {
	Configured() bool
	Current(ctx context.Context, location string) (*client.Weather, error)
}

type NewsProvider interface {
	TopHeadlines(ctx context.Context) (*client.Headlines, error)
}

// Action tells the caller whether to keep reading commands.
type Action int

const (
	ActionContinue Action = iota
	ActionExit
)

// Session is the conversation a command runs in: where replies go and where
// follow-up answers come from.
type Session struct {
	Speaker       domain.Notifier
	Listener      domain.Listener
	ListenTimeout time.Duration
}

func (s *Session) say(ctx context.Context, text string) {
	// Speakers are fan-outs that log their own failures.
	_ = s.Speaker.Speak(ctx, text)
}

// ask speaks a question and waits for one answer. An empty answer means
// nothing usable was heard.
func (s *Session) ask(ctx context.Context, question string) string {
	s.say(ctx, question)

	if s.Listener == nil {
		return ""
	}

	answer, err := s.Listener.Listen(ctx, s.ListenTimeout)
	if err != nil {
		return ""
	}
	return normalize(answer)
}
