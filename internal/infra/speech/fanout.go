package speech

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

// FanOut speaks through every notifier in order. A failing notifier is logged
// and skipped; Speak itself never fails.
type FanOut struct {
	notifiers []domain.Notifier
}

func NewFanOut(notifiers ...domain.Notifier) *FanOut {
	return &FanOut{notifiers: notifiers}
}

func (f *FanOut) Speak(ctx context.Context, text string) error {
	for _, n := range f.notifiers {
		if err := n.Speak(ctx, text); err != nil {
			slog.WarnContext(ctx, "notifier failed to speak",
				slog.String("notifier", notifierName(n)),
				slog.String("error", err.Error()),
			)
		}
	}
	return nil
}

type named interface {
	Name() string
}

func notifierName(n domain.Notifier) string {
	if nn, ok := n.(named); ok {
		return nn.Name()
	}
	return "unknown"
}
