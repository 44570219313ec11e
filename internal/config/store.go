package config

import (
	"os"
	"strconv"
)

const (
	storeDriverEnv = "STORE_DRIVER"
	sqlitePathEnv  = "DB_PATH"
	databaseURLEnv = "DATABASE_URL"

	redisAddrEnv     = "REDIS_ADDR"
	redisPasswordEnv = "REDIS_PASSWORD"
	redisDBEnv       = "REDIS_DB"
	redisTLSEnv      = "REDIS_TLS"

	defaultSQLitePath = "reminders.db"
	defaultRedisAddr  = "localhost:6379"
)

type StoreDriver string

const (
	StoreDriverSQLite   StoreDriver = "sqlite"
	StoreDriverRedis    StoreDriver = "redis"
	StoreDriverPostgres StoreDriver = "postgres"
)

// StoreConfig selects the reminder store backend. Only the settings of the
// selected driver are validated.
type StoreConfig struct {
	Driver      StoreDriver
	SQLitePath  string
	PostgresDSN string
	Redis       *RedisConfig
}

// RedisConfig holds connection settings for the redis reminder store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
}

func LoadStoreConfig() (*StoreConfig, error) {
	driver := StoreDriver(os.Getenv(storeDriverEnv))
	if driver == "" {
		driver = StoreDriverSQLite
	}

	redisConfig, err := loadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &StoreConfig{
		Driver:      driver,
		SQLitePath:  getEnvOrDefault(sqlitePathEnv, defaultSQLitePath),
		PostgresDSN: os.Getenv(databaseURLEnv),
		Redis:       redisConfig,
	}, nil
}

func loadRedisConfig() (*RedisConfig, error) {
	db := 0
	if raw := os.Getenv(redisDBEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidRedisDB
		}
		db = parsed
	}

	return &RedisConfig{
		Addr:     getEnvOrDefault(redisAddrEnv, defaultRedisAddr),
		Password: os.Getenv(redisPasswordEnv),
		DB:       db,
		TLS:      parseBool(os.Getenv(redisTLSEnv), false),
	}, nil
}

func (c *StoreConfig) Validate() error {
	switch c.Driver {
	case StoreDriverSQLite:
		if c.SQLitePath == "" {
			return ErrSQLitePathMissing
		}
	case StoreDriverPostgres:
		if c.PostgresDSN == "" {
			return ErrDatabaseURLMissing
		}
	case StoreDriverRedis:
		if c.Redis == nil || c.Redis.Addr == "" {
			return ErrRedisAddrMissing
		}
	default:
		return ErrUnknownStoreDriver
	}
	return nil
}
