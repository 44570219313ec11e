package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KasumiMercury/primind-voice-assistant/internal/client"
)

const (
	replyWeatherNoKey  = "Weather API key not set. Please set OWM_API_KEY environment variable."
	replyAskCity       = "For which city?"
	replyNoCity        = "I couldn't get the city name."
	replyWeatherFailed = "Sorry, I couldn't fetch the weather right now."
)

func (r *Router) handleWeather(ctx context.Context, session *Session, text string) Action {
	var location string
	if _, after, found := strings.Cut(text, " in "); found {
		location = strings.TrimSpace(after)
	}

	if !r.weather.Configured() {
		session.say(ctx, replyWeatherNoKey)
		return ActionContinue
	}

	if location == "" {
		location = session.ask(ctx, replyAskCity)
		if location == "" {
			session.say(ctx, replyNoCity)
			return ActionContinue
		}
	}

	weather, err := r.weather.Current(ctx, location)
	switch {
	case errors.Is(err, client.ErrWeatherLookup):
		session.say(ctx, fmt.Sprintf("Couldn't get weather for %s.", location))
		return ActionContinue
	case err != nil:
		session.say(ctx, replyWeatherFailed)
		return ActionContinue
	}

	session.say(ctx, fmt.Sprintf("The weather in %s is %s with a temperature of %s degrees Celsius.",
		weather.Location, weather.Description, strconv.FormatFloat(weather.TempCelsius, 'f', -1, 64)))

	return ActionContinue
}
