package repository

import (
	"cmp"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"slices"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-voice-assistant/internal/config"
	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

// Open builds the reminder store selected by cfg.Driver.
func Open(ctx context.Context, cfg *config.StoreConfig) (domain.ReminderStore, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		return NewSQLiteStore(cfg.SQLitePath)

	case config.StoreDriverPostgres:
		return NewPostgresStore(cfg.PostgresDSN)

	case config.StoreDriverRedis:
		client, err := newRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func newRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(client); err != nil {
		slog.Warn("failed to instrument redis tracing", slog.String("error", err.Error()))
	}
	if err := redisotel.InstrumentMetrics(client); err != nil {
		slog.Warn("failed to instrument redis metrics", slog.String("error", err.Error()))
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, unavailable("connect redis", err)
	}

	return client, nil
}

func sortByID(reminders []domain.Reminder) {
	slices.SortFunc(reminders, func(a, b domain.Reminder) int {
		return cmp.Compare(a.ID, b.ID)
	})
}
