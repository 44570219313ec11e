package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

type WeatherClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewWeatherClient(baseURL, apiKey string) *WeatherClient {
	return &WeatherClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (c *WeatherClient) Configured() bool {
	return c.apiKey != ""
}

// Current fetches current conditions in metric units. An upstream rejection
// is returned as ErrWeatherLookup carrying the provider's message.
func (c *WeatherClient) Current(ctx context.Context, location string) (*Weather, error) {
	if !c.Configured() {
		return nil, ErrAPIKeyMissing
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u = u.JoinPath("weather")
	q := u.Query()
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	slog.DebugContext(ctx, "fetching current weather",
		slog.String("location", location),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to weather provider",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var body owmWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.WarnContext(ctx, "weather provider rejected request",
			slog.String("location", location),
			slog.Int("status_code", resp.StatusCode),
			slog.String("message", body.Message),
		)
		return nil, fmt.Errorf("%w: %s", ErrWeatherLookup, body.Message)
	}

	if len(body.Weather) == 0 {
		return nil, fmt.Errorf("%w: empty conditions", ErrWeatherLookup)
	}

	return &Weather{
		Location:    location,
		Description: body.Weather[0].Description,
		TempCelsius: body.Main.Temp,
	}, nil
}
