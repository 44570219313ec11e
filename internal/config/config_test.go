package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "HTTP_ENABLED", "SERVICE_NAME",
		"STORE_DRIVER", "DB_PATH", "DATABASE_URL",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_TLS",
		"CONSOLE_ENABLED", "WAKE_WORDS", "REQUIRE_WAKE_WORD", "LISTEN_TIMEOUT_SECONDS",
		"OWM_API_KEY", "OWM_BASE_URL", "NEWSAPI_KEY", "NEWSAPI_BASE_URL", "NEWS_RSS_URL",
		"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_FROM_NUMBER", "TWILIO_TO_NUMBER",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelInfo)
	}
	if !cfg.HTTPEnabled {
		t.Error("HTTPEnabled = false, want true")
	}
	if cfg.Store.Driver != StoreDriverSQLite {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, StoreDriverSQLite)
	}
	if cfg.Store.SQLitePath != "reminders.db" {
		t.Errorf("Store.SQLitePath = %q, want %q", cfg.Store.SQLitePath, "reminders.db")
	}
	if len(cfg.Assistant.WakeWords) != 3 {
		t.Errorf("WakeWords = %v, want 3 defaults", cfg.Assistant.WakeWords)
	}
	if cfg.Assistant.ListenTimeout != 5*time.Second {
		t.Errorf("ListenTimeout = %v, want %v", cfg.Assistant.ListenTimeout, 5*time.Second)
	}
	if cfg.Twilio.Enabled() {
		t.Error("Twilio.Enabled() = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_ENABLED", "false")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("WAKE_WORDS", " Hey Jarvis , computer,, ")
	t.Setenv("REQUIRE_WAKE_WORD", "true")
	t.Setenv("LISTEN_TIMEOUT_SECONDS", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelDebug)
	}
	if cfg.HTTPEnabled {
		t.Error("HTTPEnabled = true, want false")
	}
	if cfg.Store.Driver != StoreDriverRedis {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, StoreDriverRedis)
	}
	if cfg.Store.Redis.Addr != "redis:6380" || cfg.Store.Redis.DB != 2 {
		t.Errorf("Store.Redis = %+v, want addr redis:6380 db 2", cfg.Store.Redis)
	}

	wantWakeWords := []string{"hey jarvis", "computer"}
	if len(cfg.Assistant.WakeWords) != len(wantWakeWords) {
		t.Fatalf("WakeWords = %v, want %v", cfg.Assistant.WakeWords, wantWakeWords)
	}
	for i, w := range wantWakeWords {
		if cfg.Assistant.WakeWords[i] != w {
			t.Errorf("WakeWords[%d] = %q, want %q", i, cfg.Assistant.WakeWords[i], w)
		}
	}
	if !cfg.Assistant.RequireWakeWord {
		t.Error("RequireWakeWord = false, want true")
	}
	if cfg.Assistant.ListenTimeout != 12*time.Second {
		t.Errorf("ListenTimeout = %v, want %v", cfg.Assistant.ListenTimeout, 12*time.Second)
	}
}

func TestLoadInvalidRedisDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "zero")

	_, err := Load()
	if !errors.Is(err, ErrInvalidRedisDB) {
		t.Errorf("Load() error = %v, want %v", err, ErrInvalidRedisDB)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr []error
	}{
		{
			name:    "unknown store driver",
			env:     map[string]string{"STORE_DRIVER": "mongo"},
			wantErr: []error{ErrUnknownStoreDriver},
		},
		{
			name:    "postgres without dsn",
			env:     map[string]string{"STORE_DRIVER": "postgres"},
			wantErr: []error{ErrDatabaseURLMissing},
		},
		{
			name:    "partial twilio settings",
			env:     map[string]string{"TWILIO_ACCOUNT_SID": "AC123"},
			wantErr: []error{ErrTwilioIncomplete},
		},
		{
			name: "errors are joined",
			env: map[string]string{
				"STORE_DRIVER":      "postgres",
				"TWILIO_AUTH_TOKEN": "token",
				"RATE_LIMIT_BURST":  "0",
			},
			wantErr: []error{ErrDatabaseURLMissing, ErrTwilioIncomplete, ErrInvalidRateLimit},
		},
		{
			name: "rate limit ignored when http disabled",
			env: map[string]string{
				"HTTP_ENABLED":   "false",
				"RATE_LIMIT_RPS": "-1",
			},
		},
		{
			name: "console and http both disabled",
			env: map[string]string{
				"HTTP_ENABLED":    "false",
				"CONSOLE_ENABLED": "false",
			},
			wantErr: []error{ErrNoFrontend},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}

			err = cfg.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("Validate() error = %v, want it to match %v", err, want)
				}
			}
		})
	}
}
