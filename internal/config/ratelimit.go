package config

import (
	"os"
	"strconv"
)

const (
	rateLimitRPSEnv   = "RATE_LIMIT_RPS"
	rateLimitBurstEnv = "RATE_LIMIT_BURST"

	defaultRateLimitRPS   = 5.0
	defaultRateLimitBurst = 10
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func LoadRateLimitConfig() *RateLimitConfig {
	rps := defaultRateLimitRPS
	if v := os.Getenv(rateLimitRPSEnv); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			rps = parsed
		}
	}

	burst := defaultRateLimitBurst
	if v := os.Getenv(rateLimitBurstEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			burst = parsed
		}
	}

	return &RateLimitConfig{
		RequestsPerSecond: rps,
		Burst:             burst,
	}
}

func (c *RateLimitConfig) Validate() error {
	if c.RequestsPerSecond <= 0 || c.Burst <= 0 {
		return ErrInvalidRateLimit
	}
	return nil
}
