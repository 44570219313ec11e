package client

import "errors"

var (
	ErrAPIKeyMissing  = errors.New("api key not configured")
	ErrWeatherLookup  = errors.New("weather lookup failed")
	ErrNoHeadlines    = errors.New("no headlines found")
)
