package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServiceName string
	Port        string
	LogLevel    slog.Level
	HTTPEnabled bool
	Store       *StoreConfig
	Assistant   *AssistantConfig
	Weather     *WeatherConfig
	News        *NewsConfig
	Twilio      *TwilioConfig
	RateLimit   *RateLimitConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "voice-assistant"
	}

	storeConfig, err := LoadStoreConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName: serviceName,
		Port:        port,
		LogLevel:    parseLogLevel(os.Getenv("LOG_LEVEL")),
		HTTPEnabled: parseBool(os.Getenv("HTTP_ENABLED"), true),
		Store:       storeConfig,
		Assistant:   LoadAssistantConfig(),
		Weather:     LoadWeatherConfig(),
		News:        LoadNewsConfig(),
		Twilio:      LoadTwilioConfig(),
		RateLimit:   LoadRateLimitConfig(),
	}, nil
}

// Validate reports every invalid section at once.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Store.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Assistant.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Twilio.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.HTTPEnabled {
		if err := c.RateLimit.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if !c.HTTPEnabled && !c.Assistant.ConsoleEnabled {
		errs = append(errs, ErrNoFrontend)
	}

	return errors.Join(errs...)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseBool(raw string, defaultValue bool) bool {
	if raw == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}
