package client

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const headlineLimit = 5

// Headlines groups titles with the name of the source they came from.
type Headlines struct {
	Source string
	Titles []string
}

type NewsClient struct {
	apiBaseURL string
	apiKey     string
	rssURL     string
	httpClient *http.Client
}

func NewNewsClient(apiBaseURL, apiKey, rssURL string) *NewsClient {
	return &NewsClient{
		apiBaseURL: apiBaseURL,
		apiKey:     apiKey,
		rssURL:     rssURL,
		httpClient: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

// TopHeadlines prefers NewsAPI when a key is configured and falls back to the
// RSS feed when the API is unset or fails.
func (c *NewsClient) TopHeadlines(ctx context.Context) (*Headlines, error) {
	if c.apiKey != "" {
		titles, err := c.fromNewsAPI(ctx)
		if err == nil {
			return &Headlines{Source: "NewsAPI", Titles: titles}, nil
		}
		if errors.Is(err, ErrNoHeadlines) {
			return nil, err
		}
		slog.WarnContext(ctx, "newsapi request failed, falling back to rss",
			slog.String("error", err.Error()),
		)
	}

	titles, err := c.fromRSS(ctx)
	if err != nil {
		return nil, err
	}

	return &Headlines{Source: "BBC", Titles: titles}, nil
}

func (c *NewsClient) fromNewsAPI(ctx context.Context) ([]string, error) {
	u, err := url.Parse(c.apiBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u = u.JoinPath("top-headlines")
	q := u.Query()
	q.Set("apiKey", c.apiKey)
	q.Set("country", "us")
	q.Set("pageSize", fmt.Sprint(headlineLimit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if body.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q: %s", body.Status, body.Message)
	}

	titles := make([]string, 0, headlineLimit)
	for _, a := range body.Articles {
		if len(titles) == headlineLimit {
			break
		}
		titles = append(titles, a.Title)
	}
	if len(titles) == 0 {
		return nil, ErrNoHeadlines
	}

	return titles, nil
}

func (c *NewsClient) fromRSS(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rssURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	titles := make([]string, 0, headlineLimit)
	for _, item := range feed.Channel.Items {
		if len(titles) == headlineLimit {
			break
		}
		if title := strings.TrimSpace(item.Title); title != "" {
			titles = append(titles, title)
		}
	}
	if len(titles) == 0 {
		return nil, ErrNoHeadlines
	}

	return titles, nil
}
