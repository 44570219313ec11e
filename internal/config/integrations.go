package config

import (
	"os"
)

const (
	defaultOWMBaseURL     = "https://api.openweathermap.org/data/2.5"
	defaultNewsAPIBaseURL = "https://newsapi.org/v2"
	defaultNewsRSSURL     = "http://feeds.bbci.co.uk/news/rss.xml"
)

type WeatherConfig struct {
	APIKey  string
	BaseURL string
}

func LoadWeatherConfig() *WeatherConfig {
	return &WeatherConfig{
		APIKey:  os.Getenv("OWM_API_KEY"),
		BaseURL: getEnvOrDefault("OWM_BASE_URL", defaultOWMBaseURL),
	}
}

type NewsConfig struct {
	APIKey  string
	BaseURL string
	RSSURL  string
}

func LoadNewsConfig() *NewsConfig {
	return &NewsConfig{
		APIKey:  os.Getenv("NEWSAPI_KEY"),
		BaseURL: getEnvOrDefault("NEWSAPI_BASE_URL", defaultNewsAPIBaseURL),
		RSSURL:  getEnvOrDefault("NEWS_RSS_URL", defaultNewsRSSURL),
	}
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	ToNumber   string
}

func LoadTwilioConfig() *TwilioConfig {
	return &TwilioConfig{
		AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		FromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		ToNumber:   os.Getenv("TWILIO_TO_NUMBER"),
	}
}

// Enabled reports whether any Twilio setting is present.
func (c *TwilioConfig) Enabled() bool {
	return c.AccountSID != "" || c.AuthToken != "" || c.FromNumber != "" || c.ToNumber != ""
}

func (c *TwilioConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.AccountSID == "" || c.AuthToken == "" || c.FromNumber == "" || c.ToNumber == "" {
		return ErrTwilioIncomplete
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
