package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-voice-assistant/internal/config"
)

var baseRemindAt = time.Date(2024, 1, 1, 12, 10, 0, 0, time.Local)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.StoreConfig
		wantErr error
	}{
		{
			name: "sqlite",
			cfg: &config.StoreConfig{
				Driver:     config.StoreDriverSQLite,
				SQLitePath: filepath.Join(t.TempDir(), "reminders.db"),
			},
		},
		{
			name:    "unknown driver",
			cfg:     &config.StoreConfig{Driver: "mongo"},
			wantErr: ErrUnknownDriver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(context.Background(), tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() unexpected error: %v", err)
			}
			defer store.Close()

			if err := store.Ping(context.Background()); err != nil {
				t.Errorf("Ping() unexpected error: %v", err)
			}
		})
	}
}
