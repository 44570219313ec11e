package command

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	routeRemind  = "remind"
	routeWeather = "weather"
	routeNews    = "news"
	routeHelp    = "help"
	routeExit    = "exit"

	replyHelp     = "You can say: set a reminder to take medicine in 10 minutes. Or say: what's the weather in London. Or: read the news."
	replyGoodbye  = "Goodbye!"
	replyFallback = "Sorry, I didn't understand that. Say 'help' to hear what I can do."
)

type route struct {
	name    string
	matches func(text string) bool
	handle  func(ctx context.Context, session *Session, text string) Action
}

// Router dispatches a command to the first route whose keywords it contains.
type Router struct {
	reminders ReminderCreator
	weather   WeatherProvider
	news      NewsProvider
	now       func() time.Time
	routes    []route
}

type RouterOption func(*Router)

func WithClock(now func() time.Time) RouterOption {
	return func(r *Router) {
		r.now = now
	}
}

func NewRouter(reminders ReminderCreator, weather WeatherProvider, news NewsProvider, opts ...RouterOption) *Router {
	r := &Router{
		reminders: reminders,
		weather:   weather,
		news:      news,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.routes = []route{
		{name: routeRemind, matches: containsAny("remind"), handle: r.handleReminder},
		{name: routeWeather, matches: containsAny("weather"), handle: r.handleWeather},
		{name: routeNews, matches: containsAny("news", "headlines"), handle: r.handleNews},
		{name: routeHelp, matches: containsAny("help"), handle: r.handleHelp},
		{name: routeExit, matches: containsAny("exit", "quit", "stop"), handle: r.handleExit},
	}

	return r
}

func (r *Router) Dispatch(ctx context.Context, session *Session, text string) Action {
	text = normalize(text)
	commandID := uuid.NewString()

	for _, rt := range r.routes {
		if !rt.matches(text) {
			continue
		}

		slog.InfoContext(ctx, "dispatching command",
			slog.String("command_id", commandID),
			slog.String("route", rt.name),
			slog.String("text", text),
		)
		return rt.handle(ctx, session, text)
	}

	slog.InfoContext(ctx, "command not understood",
		slog.String("command_id", commandID),
		slog.String("text", text),
	)
	session.say(ctx, replyFallback)

	return ActionContinue
}

func (r *Router) handleHelp(ctx context.Context, session *Session, _ string) Action {
	session.say(ctx, replyHelp)
	return ActionContinue
}

func (r *Router) handleExit(ctx context.Context, session *Session, _ string) Action {
	session.say(ctx, replyGoodbye)
	return ActionExit
}

func containsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
