package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
	"github.com/KasumiMercury/primind-voice-assistant/internal/service/reminder"
)

const (
	confirmationLayout = "03:04 PM on Jan 02"

	replyReminderFormat = "I didn't understand the reminder format. Try: remind me to take medicine in 10 minutes."
	replyAskWhen        = "When should I remind you?"
	replyBadTime        = "I couldn't parse the time. Please say something like 'in 10 minutes' or 'at 7 PM'."
	replyStoreFailed    = "Sorry, I couldn't save that reminder right now."
)

var (
	reminderPrefixes = []string{"reminder to", "remind me to"}
	timeMarkers      = []string{" in ", " at "}
)

// splitReminder extracts the reminder body after the trigger phrase and, when
// present, the trailing time phrase starting at the first time marker.
func splitReminder(text string) (message, phrase string, ok bool) {
	var body string
	for _, prefix := range reminderPrefixes {
		if _, after, found := strings.Cut(text, prefix); found {
			body = strings.TrimSpace(after)
			ok = true
			break
		}
	}
	if !ok {
		return "", "", false
	}

	for _, marker := range timeMarkers {
		if idx := strings.Index(body, marker); idx >= 0 {
			return strings.TrimSpace(body[:idx]), strings.TrimSpace(body[idx:]), true
		}
	}

	return body, "", true
}

func (r *Router) handleReminder(ctx context.Context, session *Session, text string) Action {
	message, phrase, ok := splitReminder(text)
	if !ok {
		session.say(ctx, replyReminderFormat)
		return ActionContinue
	}

	if phrase == "" {
		phrase = session.ask(ctx, replyAskWhen)
	}

	result, err := r.reminders.CreateReminder(ctx, message, phrase, r.now())
	switch {
	case errors.Is(err, domain.ErrUnparseableTime):
		session.say(ctx, replyBadTime)
		return ActionContinue
	case err != nil:
		session.say(ctx, replyStoreFailed)
		return ActionContinue
	}

	session.say(ctx, confirmation(message, result))
	return ActionContinue
}

func confirmation(message string, result *reminder.CreateResult) string {
	if !result.Armed {
		return fmt.Sprintf("That time has already passed, so I won't remind you to %s.", message)
	}
	return fmt.Sprintf("Okay, I'll remind you to %s at %s.", message, result.RemindAt.Format(confirmationLayout))
}
