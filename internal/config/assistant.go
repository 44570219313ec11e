package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	consoleEnabledEnv       = "CONSOLE_ENABLED"
	wakeWordsEnv            = "WAKE_WORDS"
	requireWakeWordEnv      = "REQUIRE_WAKE_WORD"
	listenTimeoutSecondsEnv = "LISTEN_TIMEOUT_SECONDS"

	defaultListenTimeout = 5 * time.Second
)

var defaultWakeWords = []string{"hey assistant", "ok assistant", "assistant"}

type AssistantConfig struct {
	// ConsoleEnabled runs the stdin command loop. Headless deployments turn
	// it off and are driven over HTTP only.
	ConsoleEnabled  bool
	WakeWords       []string
	RequireWakeWord bool
	ListenTimeout   time.Duration
}

func LoadAssistantConfig() *AssistantConfig {
	wakeWords := defaultWakeWords
	if raw := os.Getenv(wakeWordsEnv); raw != "" {
		wakeWords = splitList(raw)
	}

	listenTimeout := defaultListenTimeout
	if v := os.Getenv(listenTimeoutSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			listenTimeout = time.Duration(parsed) * time.Second
		}
	}

	return &AssistantConfig{
		ConsoleEnabled:  parseBool(os.Getenv(consoleEnabledEnv), true),
		WakeWords:       wakeWords,
		RequireWakeWord: parseBool(os.Getenv(requireWakeWordEnv), false),
		ListenTimeout:   listenTimeout,
	}
}

func (c *AssistantConfig) Validate() error {
	if c.RequireWakeWord && len(c.WakeWords) == 0 {
		return ErrNoWakeWords
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			items = append(items, p)
		}
	}
	return items
}
