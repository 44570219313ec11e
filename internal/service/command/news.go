package command

import (
	"context"
	"errors"

	"github.com/KasumiMercury/primind-voice-assistant/internal/client"
)

const (
	replyNoArticles = "No articles found."
	replyNewsFailed = "Sorry, I couldn't fetch the news right now."
)

func (r *Router) handleNews(ctx context.Context, session *Session, _ string) Action {
	headlines, err := r.news.TopHeadlines(ctx)
	switch {
	case errors.Is(err, client.ErrNoHeadlines):
		session.say(ctx, replyNoArticles)
		return ActionContinue
	case err != nil:
		session.say(ctx, replyNewsFailed)
		return ActionContinue
	}

	if headlines.Source == "NewsAPI" {
		session.say(ctx, "Here are the top headlines.")
	} else {
		session.say(ctx, "Here are some headlines from "+headlines.Source+".")
	}

	for _, title := range headlines.Titles {
		session.say(ctx, title)
	}

	return ActionContinue
}
